package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/ericmurielchan/chanmkt/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
			r.Post("/login", h.Login)
			r.Post("/refresh", h.Refresh)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/cards", h.ListCards)
			r.Post("/cards", h.CreateCard)
			r.Get("/cards/{id}", h.GetCard)
			r.Patch("/cards/{id}", h.UpdateCard)
			r.Put("/cards/{id}/status", h.SetCardStatus)
			r.Put("/cards/{id}/assignees/{userId}", h.ToggleAssignee)
			r.Post("/cards/{id}/comments", h.AddComment)
			r.Post("/cards/{id}/checklist", h.AddChecklistItem)
			r.Put("/cards/{id}/checklist/{itemId}", h.ToggleChecklistItem)
			r.Delete("/cards/{id}/checklist/{itemId}", h.DeleteChecklistItem)
			r.Post("/cards/{id}/labels", h.AddLabel)
			r.Delete("/cards/{id}/labels/{labelId}", h.RemoveLabel)
			r.Post("/cards/{id}/attachments", h.AddAttachment)
			r.Delete("/cards/{id}/attachments/{attachmentId}", h.RemoveAttachment)
			r.Post("/cards/{id}/timer/start", h.StartTimer)
			r.Post("/cards/{id}/timer/pause", h.PauseTimer)
			r.Post("/cards/{id}/timer/stop", h.StopTimer)
			r.Put("/cards/{id}/financial-value", h.SetFinancialValue)
			r.Get("/cards/{id}/activity", h.CardActivity)

			r.Post("/requests", h.SubmitRequest)
			r.Post("/requests/validate", h.ValidateWizardStep)
			r.Post("/requests/{id}/decision", h.DecideRequest)

			r.Get("/clients", h.ListClients)
			r.Post("/clients", h.OnboardClient)
			r.Get("/clients/{id}", h.GetClient)
			r.Patch("/clients/{id}", h.UpdateClient)
			r.Put("/clients/{id}/team", h.AssignTeam)
			r.Post("/clients/{id}/payments", h.RegisterPayment)
			r.Put("/clients/{id}/payment-status", h.SetPaymentStatus)

			r.Get("/dashboard", h.Dashboard)
			r.Get("/calendar", h.Calendar)
			r.Get("/insights", h.Insights)

			r.Get("/users", h.ListUsers)
			r.Post("/users", h.CreateUser)
			r.Patch("/users/{id}", h.UpdateUser)
			r.Delete("/users/{id}", h.DeactivateUser)

			r.Get("/suppliers", h.ListSuppliers)
			r.Post("/suppliers", h.CreateSupplier)
			r.Get("/purchases", h.ListPurchases)
			r.Post("/purchases", h.CreatePurchase)
			r.Put("/purchases/{id}/paid", h.MarkPurchasePaid)

			r.Get("/notifications", h.ListNotifications)
			r.Put("/notifications/{id}/read", h.MarkNotificationRead)
		})
	})

	return router
}
