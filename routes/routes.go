package routes

import (
	"techcare/internal/handlers"

	"github.com/gin-gonic/gin"
)

// Setup wires the flat route table the deployed frontend consumes. The
// paths are part of the public contract and must not change.
//
// authRequired is applied to the mutating routes only when
// protectMutations is set; the historical deployment left them open.
func Setup(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	serviceHandler *handlers.ServiceHandler,
	reviewHandler *handlers.ReviewHandler,
	blogHandler *handlers.BlogHandler,
	authRequired gin.HandlerFunc,
	protectMutations bool,
) {
	// Session
	r.GET("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Public reads
	r.GET("/services", serviceHandler.List)
	r.GET("/services-limited", serviceHandler.ListRecent)
	r.GET("/service/:id", serviceHandler.GetByID)
	r.GET("/blogs", blogHandler.List)
	r.GET("/reviews/:id", reviewHandler.ListForService)
	r.GET("/reviews-limited", reviewHandler.ListTopRated)
	r.GET("/my-reviews", reviewHandler.ListForUser)

	// Mutations
	mutations := r.Group("/")
	if protectMutations {
		mutations.Use(authRequired)
	}
	{
		mutations.POST("/add-service", serviceHandler.Create)
		mutations.POST("/reviews/:id", reviewHandler.Create)
		mutations.PUT("/edit-review/:id", reviewHandler.Update)
		mutations.DELETE("/delete-review/:id", reviewHandler.Delete)
	}
}
