package http

import (
	"strconv"

	"admission-backend/internal/adapter/middleware"
	"admission-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Health   *Handler
	Auth     *AuthHandler
	Student  *StudentHandler
	Verifier *VerifierHandler
	Admin    *AdminHandler
}

type RouteConfig struct {
	Tokens middleware.TokenParser
	// Idempotency is optional; nil disables replay protection.
	Idempotency echo.MiddlewareFunc
	MaxUpload   int64
}

func RegisterRoutes(e *echo.Echo, h Handlers, cfg RouteConfig) {
	e.GET("/health", h.Health.Health)

	api := e.Group("/api")

	authg := api.Group("/auth")
	authg.POST("/register", h.Auth.Register)
	authg.POST("/login", h.Auth.Login)

	guarded := func(extra []echo.MiddlewareFunc, roles ...user.Role) []echo.MiddlewareFunc {
		mw := append([]echo.MiddlewareFunc{middleware.JWTAuth(cfg.Tokens), middleware.RequireRoles(roles...)}, extra...)
		if cfg.Idempotency != nil {
			mw = append(mw, cfg.Idempotency)
		}
		return mw
	}
	// multipart overhead on top of the file itself; applied before idempotency buffers the body
	upload := echomw.BodyLimit(strconv.FormatInt(cfg.MaxUpload+1<<20, 10))

	st := api.Group("/student", guarded([]echo.MiddlewareFunc{upload}, user.RoleStudent)...)
	st.POST("/profile", h.Student.CreateProfile)
	st.GET("/profile", h.Student.GetProfile)
	st.PUT("/profile", h.Student.UpdateProfile)
	st.POST("/upload-document", h.Student.UploadDocument)
	st.PUT("/submit", h.Student.Submit)
	st.GET("/payment", h.Student.GetPayment)
	st.POST("/payment/generate", h.Student.GeneratePaymentLink)
	st.POST("/payment/confirm", h.Student.ConfirmPayment)
	st.POST("/payment/submit-receipt", h.Student.SubmitReceipt)

	vr := api.Group("/verifier", guarded(nil, user.RoleVerifier, user.RoleAdmin)...)
	vr.GET("/students", h.Verifier.ListStudents)
	vr.GET("/student/:id", h.Verifier.GetStudent)
	vr.PUT("/document/:id", h.Verifier.VerifyDocument)
	vr.PUT("/final-decision/:studentId", h.Verifier.FinalDecision)
	vr.PUT("/student/:id/approve-all", h.Verifier.ApproveAll)
	vr.PUT("/student/:id/approve", h.Verifier.ApproveSelected)

	ad := api.Group("/admin", guarded(nil, user.RoleAdmin)...)
	ad.GET("/students", h.Admin.ListStudents)
	ad.GET("/students/:id", h.Admin.GetStudent)
	ad.GET("/assignments", h.Admin.ListStudents)
	ad.GET("/dashboard", h.Admin.Dashboard)
	ad.GET("/verifiers", h.Admin.ListVerifiers)
	ad.POST("/assign-verifier", h.Admin.AssignVerifier)
	ad.POST("/create-verifier", h.Admin.CreateVerifier)
}
