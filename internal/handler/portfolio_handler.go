package handler

import (
	"net/http"

	"github.com/folium/backend/internal/service"
)

// PortfolioHandler は公開サイト初回ロード用の集約 API を処理する
type PortfolioHandler struct {
	portfolioService service.PortfolioService
}

// NewPortfolioHandler は PortfolioHandler を生成する
func NewPortfolioHandler(portfolioService service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// Get は GET /api/portfolio を処理する。
// 6 コレクションのうち1つでも読み取りに失敗した場合は部分結果を返さず 500。
func (h *PortfolioHandler) Get(w http.ResponseWriter, r *http.Request) {
	data, err := h.portfolioService.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "fetch_failed")
		return
	}
	writeJSON(w, http.StatusOK, data)
}
