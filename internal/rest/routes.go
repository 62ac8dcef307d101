package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes builds the echo instance serving the CMS, public, discovery
// and JSON-RPC surfaces. rpc may be nil when the RPC surface is disabled.
func RegisterRoutes(content *ContentHandler, disc *DiscoveryHandler, rpc http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	cms := e.Group("/cms")
	cms.POST("/content", content.CreateContent)
	cms.GET("/content", content.ContentList)
	cms.GET("/content/:id", content.ContentByID)
	cms.PUT("/content/:id", content.UpdateContent)
	cms.DELETE("/content/:id", content.DeleteContent)

	e.GET("/content", content.PublicContentList)
	e.GET("/content/search", content.SearchContent)
	e.GET("/content/:id", content.PublicContentByID)

	d := e.Group("/discovery")
	d.GET("/trending", disc.Trending)
	d.GET("/recommended", disc.Recommended)
	d.GET("/popular", disc.Popular)
	d.GET("/related/:id", disc.Related)
	d.GET("/recent", disc.Recent)

	e.GET("/health", handleHealth)

	if rpc != nil {
		e.Any("/rpc", echo.WrapHandler(rpc))
	}

	return e
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
