package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"educrm/backend/config"
	"educrm/backend/internal/api/handler"
	"educrm/backend/internal/api/middleware"
)

// Setup builds the Gin engine with all routes registered.
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── Health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		groups := v1.Group("/groups")
		{
			groups.GET("", h.Group.ListGroups)
			groups.GET("/:id", h.Group.GetGroup)
			groups.POST("", h.Group.CreateGroup)
			groups.PUT("/:id", h.Group.UpdateGroup)
			groups.DELETE("/:id", h.Group.DeleteGroup)
			groups.GET("/:id/calendar", h.Group.GetGroupCalendar)
		}

		students := v1.Group("/students")
		{
			students.GET("", h.Student.ListStudents)
			students.GET("/:id", h.Student.GetStudent)
			students.POST("", h.Student.CreateStudent)
			students.PUT("/:id", h.Student.UpdateStudent)
			students.DELETE("/:id", h.Student.DeleteStudent)
		}

		teachers := v1.Group("/teachers")
		{
			teachers.GET("", h.Teacher.ListTeachers)
			teachers.GET("/:id", h.Teacher.GetTeacher)
			teachers.POST("", h.Teacher.CreateTeacher)
			teachers.PUT("/:id", h.Teacher.UpdateTeacher)
			teachers.DELETE("/:id", h.Teacher.DeleteTeacher)
		}

		payments := v1.Group("/payments")
		{
			payments.GET("", h.Payment.ListPayments)
			payments.GET("/stats", h.Payment.GetPaymentStats)
			payments.GET("/:id", h.Payment.GetPayment)
			payments.POST("", h.Payment.CreatePayment)
			payments.PUT("/:id", h.Payment.UpdatePayment)
			payments.POST("/:id/pay", h.Payment.PayPayment)
			payments.DELETE("/:id", h.Payment.DeletePayment)
			payments.POST("/reconcile", h.Payment.ReconcilePayments)
		}

		expenses := v1.Group("/expenses")
		{
			expenses.GET("", h.Expense.ListExpenses)
			expenses.POST("", h.Expense.CreateExpense)
			expenses.DELETE("/:id", h.Expense.DeleteExpense)
		}

		finance := v1.Group("/finance")
		{
			finance.GET("/summary", h.Finance.GetSummary)
			finance.GET("/export", h.Finance.ExportLedger)
		}
	}

	return r
}
