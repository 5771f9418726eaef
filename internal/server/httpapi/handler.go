package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/geoportal/internal/common"
	"github.com/gin-gonic/gin"
)

const (
	msgCredentialsRequired = "Username and password are required"
	msgInvalidCredentials  = "Invalid username or password"
	msgLoginSuccessful     = "Login successful"
	msgInternalError       = "Internal server error"
	msgNoData              = "No data provided"
	msgNoGeometry          = "No geometry provided"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks a username and password against the credential store and
// reports the user's role.
func (s *HTTPServer) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgCredentialsRequired})
		return
	}

	ctx := c.Request.Context()
	user, err := s.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": msgCredentialsRequired})
		case errors.Is(err, common.ErrorUnauthorized):
			s.requestLog(c).Info(ctx, "login rejected", "username", req.Username)
			c.JSON(http.StatusUnauthorized, gin.H{"message": msgInvalidCredentials})
		default:
			s.requestLog(c).Error(ctx, "login failed", "username", req.Username, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternalError})
		}
		return
	}

	s.requestLog(c).Info(ctx, "login", "username", user.UserName, "role", user.Role)
	c.JSON(http.StatusOK, gin.H{"message": msgLoginSuccessful, "role": user.Role})
}

// SaveGeometry stores the GeoJSON object found under "geometry" and returns
// the id of the new row. Store errors are reported verbatim.
func (s *HTTPServer) SaveGeometry(c *gin.Context) {
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msgNoData})
		return
	}

	ctx := c.Request.Context()
	id, err := s.geometries.Save(ctx, body["geometry"])
	if err != nil {
		if errors.Is(err, common.ErrorNoGeometry) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msgNoGeometry})
			return
		}

		kind := "store"
		if errors.Is(err, common.ErrInvalidGeometry) {
			kind = "invalid_geometry"
		}
		s.requestLog(c).Error(ctx, "save geometry failed", "kind", kind, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	s.requestLog(c).Info(ctx, "geometry saved", "id", id)
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (s *HTTPServer) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
