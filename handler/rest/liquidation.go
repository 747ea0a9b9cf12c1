package rest

import (
	"net/http"
	"strconv"
	"strings"

	"morpho/core"
	"morpho/handler/render"
)

const maxLiquidationPage = 100

func liquidationsHandler(liquidationStr core.ILiquidationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := strings.ToUpper(r.URL.Query().Get("symbol"))

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit <= 0 || limit > maxLiquidationPage {
			limit = maxLiquidationPage
		}

		liquidations, err := liquidationStr.List(r.Context(), symbol, limit)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, liquidations)
	}
}
