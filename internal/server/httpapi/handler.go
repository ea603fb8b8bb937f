package httpapi

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"github.com/dpetrovs/filebox/internal/common"
	"github.com/gin-gonic/gin"
)

func (s *Server) dispatch(c *gin.Context) {
	switch c.Query("command") {
	case "put":
		s.handlePut(c)
	case "view":
		s.handleView(c)
	case "get":
		s.handleGet(c)
	case "newuser":
		s.handleNewUser(c)
	case "login":
		s.handleLogin(c)
	case "share":
		s.handleShare(c)
	default:
		c.JSON(http.StatusBadRequest, Response{Success: false})
	}
}

// handlePut stores the request body under (user, filename). A body sent with
// Content-Transfer-Encoding: base64 is decoded before storing.
func (s *Server) handlePut(c *gin.Context) {
	filename := c.Query("filename")
	user := c.Query("user")
	if filename == "" || user == "" {
		c.JSON(http.StatusCreated, Response{Success: false})
		return
	}

	content, err := c.GetRawData()
	if err != nil {
		s.logger.Error(c.Request.Context(), "reading upload body", "error", err)
		c.JSON(http.StatusCreated, Response{Success: false})
		return
	}

	if c.GetHeader("Content-Transfer-Encoding") == "base64" {
		decoded, err := base64.StdEncoding.DecodeString(string(content))
		if err != nil {
			c.JSON(http.StatusCreated, Response{Success: false})
			return
		}
		content = decoded
	}

	if err := s.files.Upload(c.Request.Context(), filename, user, content); err != nil {
		s.logger.Error(c.Request.Context(), "upload failed", "error", err)
		c.JSON(http.StatusCreated, Response{Success: false})
		return
	}

	c.JSON(http.StatusCreated, Response{Success: true})
}

func (s *Server) handleView(c *gin.Context) {
	user := c.Query("user")
	if user == "" {
		c.JSON(http.StatusOK, Response{Success: false})
		return
	}

	listing, err := s.files.List(c.Request.Context(), user)
	if err != nil {
		s.logger.Error(c.Request.Context(), "listing failed", "error", err)
		c.JSON(http.StatusOK, Response{Success: false})
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: listing})
}

func (s *Server) handleGet(c *gin.Context) {
	filename := c.Query("filename")
	user := c.Query("user")
	if filename == "" || user == "" {
		c.JSON(http.StatusOK, DownloadResponse{Success: false})
		return
	}

	content, err := s.files.Download(c.Request.Context(), filename, user)
	if err != nil {
		if errors.Is(err, common.ErrorNotOwner) {
			c.JSON(http.StatusOK, DownloadResponse{
				Success: false,
				Data:    fmt.Sprintf("%s does not belong to %s", filename, user),
			})
			return
		}
		s.logger.Error(c.Request.Context(), "download failed", "error", err)
		c.JSON(http.StatusOK, DownloadResponse{Success: false})
		return
	}

	c.JSON(http.StatusOK, DownloadResponse{
		Success:         true,
		Data:            base64.StdEncoding.EncodeToString(content),
		IsBase64Encoded: true,
	})
}

func (s *Server) handleNewUser(c *gin.Context) {
	username := c.Query("username")
	password := c.Query("password")
	if username == "" || password == "" {
		c.JSON(http.StatusCreated, Response{Success: false})
		return
	}

	if _, err := s.users.Register(c.Request.Context(), username, password); err != nil {
		if errors.Is(err, common.ErrorDuplicate) {
			c.JSON(http.StatusCreated, Response{
				Success: false,
				Data:    fmt.Sprintf("Username %q is already exists", username),
			})
			return
		}
		s.logger.Error(c.Request.Context(), "registration failed", "error", err)
		c.JSON(http.StatusCreated, Response{Success: false})
		return
	}

	c.JSON(http.StatusCreated, Response{Success: true})
}

func (s *Server) handleLogin(c *gin.Context) {
	username := c.Query("username")
	password := c.Query("password")
	if username == "" || password == "" {
		c.JSON(http.StatusOK, Response{Success: false})
		return
	}

	if err := s.users.Login(c.Request.Context(), username, password); err != nil {
		if !errors.Is(err, common.ErrorUnauthorized) {
			s.logger.Error(c.Request.Context(), "login failed", "error", err)
		}
		c.JSON(http.StatusOK, Response{Success: false})
		return
	}

	c.JSON(http.StatusOK, Response{Success: true})
}

func (s *Server) handleShare(c *gin.Context) {
	from := c.Query("share_from")
	to := c.Query("share_to")
	filename := c.Query("filename")
	if from == "" || to == "" || filename == "" {
		c.JSON(http.StatusCreated, Response{Success: false})
		return
	}

	if err := s.files.Share(c.Request.Context(), from, to, filename); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			c.JSON(http.StatusCreated, Response{
				Success: false,
				Data:    fmt.Sprintf("Username %q does not exists", to),
			})
		case errors.Is(err, common.ErrorNotOwner):
			c.JSON(http.StatusCreated, Response{
				Success: false,
				Data:    fmt.Sprintf("%s is not owned by you", filename),
			})
		default:
			s.logger.Error(c.Request.Context(), "share failed", "error", err)
			c.JSON(http.StatusCreated, Response{Success: false})
		}
		return
	}

	c.JSON(http.StatusCreated, Response{Success: true})
}
