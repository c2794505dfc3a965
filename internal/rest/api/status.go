package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mwalzer/enigma/cmd/enigma/build"
)

func (a *API) Status(c *gin.Context) {
	status := map[string]string{
		"BuildTime":    build.Time,
		"BuildCommit":  build.Commit,
		"BuildVersion": build.Version,
		"Uptime":       a.clock.Since(a.started).String(),
	}
	c.JSON(http.StatusOK, status)
}
