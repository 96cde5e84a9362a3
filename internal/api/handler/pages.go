package handler

import (
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// PagesHandler serves the static frontend pages. The frontend directory
// layout matches what the HTML expects: assets under /static, pages under
// <frontend>/pages.
type PagesHandler struct {
	pagesDir string
}

func NewPagesHandler(frontendDir string) *PagesHandler {
	return &PagesHandler{pagesDir: filepath.Join(frontendDir, "pages")}
}

func (h *PagesHandler) Login(c echo.Context) error {
	return c.File(filepath.Join(h.pagesDir, "login.html"))
}

func (h *PagesHandler) Questions(c echo.Context) error {
	return c.File(filepath.Join(h.pagesDir, "questions.html"))
}

func (h *PagesHandler) Dashboard(c echo.Context) error {
	return c.File(filepath.Join(h.pagesDir, "dashboard.html"))
}
