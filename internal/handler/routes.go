package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, transactionHandler *TransactionHandler, categoryHandler *CategoryHandler, reportHandler *ReportHandler, exportHandler *ExportHandler, settingsHandler *SettingsHandler, wsHandler *WebSocketHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Category routes
	categories := api.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Report routes
	reports := api.Group("/reports")
	reports.GET("/categories", reportHandler.GetCategoryTotals)
	reports.GET("/daily", reportHandler.GetDailySeries)
	reports.GET("/summary", reportHandler.GetSummary)

	// Export and import routes
	api.GET("/export", exportHandler.ExportJSON)
	api.GET("/export/summary", exportHandler.ExportSummary)
	api.GET("/export/transactions", exportHandler.ExportDetailed)
	api.POST("/import", exportHandler.Import)
	api.DELETE("/data", exportHandler.ClearAll)

	// Settings routes
	settings := api.Group("/settings")
	settings.GET("/currency", settingsHandler.GetCurrency)
	settings.PUT("/currency", settingsHandler.SetCurrency)
	settings.GET("/currencies", settingsHandler.GetCurrencies)

	// WebSocket endpoint for live change events
	e.GET("/ws", wsHandler.HandleWS)
}
