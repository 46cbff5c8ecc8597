package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cropai/internal/infrastructure/i18n"
)

type languageView struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	Native         string `json:"native"`
	Region         string `json:"region"`
	IsRTL          bool   `json:"is_rtl"`
	HasTranslation bool   `json:"has_translation"`
}

func viewLanguage(info i18n.LanguageInfo) languageView {
	return languageView{
		Code:           info.Code,
		Name:           info.Name,
		Native:         info.Native,
		Region:         info.Region,
		IsRTL:          info.IsRTL,
		HasTranslation: info.HasTranslation,
	}
}

func (s *Server) handleLanguages(c *gin.Context) {
	infos := s.locales.Languages()
	views := make([]languageView, 0, len(infos))
	for _, info := range infos {
		views = append(views, viewLanguage(info))
	}

	current := s.locales.Fallback()
	direction := "ltr"
	if ls := localeSession(c); ls != nil {
		current = ls.Code()
		direction = ls.Direction()
	}
	respondOK(c, gin.H{
		"languages": views,
		"current":   current,
		"direction": direction,
	})
}

type setLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

func (s *Server) handleSetLanguage(c *gin.Context) {
	var req setLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ls := localeSession(c)
	if ls == nil {
		respondError(c, http.StatusInternalServerError, "no locale session")
		return
	}
	if !ls.SetLanguage(c.Request.Context(), req.Language) {
		respondError(c, http.StatusConflict, "language change already in progress")
		return
	}

	native := ls.Code()
	if info, ok := s.languageInfo(ls.Code()); ok {
		native = info.Native
	}
	respondOK(c, gin.H{
		"language":  ls.Code(),
		"direction": ls.Direction(),
		"message":   ls.Translate("messages.language_changed", map[string]any{"language": native}),
	})
}

func (s *Server) languageInfo(code string) (languageView, bool) {
	for _, info := range s.locales.Languages() {
		if info.Code == code {
			return viewLanguage(info), true
		}
	}
	return languageView{}, false
}

// handleCatalog serves one language's full translation tree so clients can
// render without a round-trip per string.
func (s *Server) handleCatalog(c *gin.Context) {
	code := c.Param("code")
	table, ok := s.locales.Table(code)
	if !ok {
		respondError(c, http.StatusNotFound, "no translations for "+code)
		return
	}
	respondOK(c, gin.H{"language": code, "catalog": table})
}
