package router

import (
	"github.com/gin-gonic/gin"
	"github.com/restaurantsys/backoffice/config"
	"github.com/restaurantsys/backoffice/controllers"
	"github.com/restaurantsys/backoffice/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	customerCtrl := controllers.NewCustomerController(db, cfg.Limits)
	waiterCtrl := controllers.NewWaiterController(db, cfg.Limits)
	dishCtrl := controllers.NewDishController(db, cfg.Limits)
	orderCtrl := controllers.NewOrderController(db, cfg.Limits)
	reservationCtrl := controllers.NewReservationController(db, cfg.Limits)

	api := r.Group("/api")
	{
		customers := api.Group("/customers")
		{
			customers.GET("", customerCtrl.GetAllCustomers)
			customers.GET("/:customer_id", customerCtrl.GetCustomerByID)
			customers.POST("", customerCtrl.CreateCustomer)
			customers.PUT("/:customer_id", customerCtrl.UpdateCustomer)
			customers.DELETE("/:customer_id", customerCtrl.DeleteCustomer)
		}

		waiters := api.Group("/waiters")
		{
			waiters.GET("", waiterCtrl.GetAllWaiters)
			waiters.GET("/:waiter_id", waiterCtrl.GetWaiterByID)
			waiters.POST("", waiterCtrl.CreateWaiter)
			waiters.PUT("/:waiter_id", waiterCtrl.UpdateWaiter)
			waiters.DELETE("/:waiter_id", waiterCtrl.DeleteWaiter)
		}

		dishes := api.Group("/dishes")
		{
			dishes.GET("", dishCtrl.GetAllDishes)
			dishes.GET("/:dish_id", dishCtrl.GetDishByID)
			dishes.POST("", dishCtrl.CreateDish)
			dishes.PUT("/:dish_id", dishCtrl.UpdateDish)
			dishes.DELETE("/:dish_id", dishCtrl.DeleteDish)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", orderCtrl.GetAllOrders)
			orders.GET("/:order_id", orderCtrl.GetOrderByID)
			orders.POST("", orderCtrl.CreateOrder)
			orders.PUT("/:order_id", orderCtrl.UpdateOrder)
			orders.DELETE("/:order_id", orderCtrl.DeleteOrder)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", reservationCtrl.GetAllReservations)
			reservations.GET("/:reservation_id", reservationCtrl.GetReservationByID)
			reservations.POST("", reservationCtrl.CreateReservation)
			reservations.PUT("/:reservation_id", reservationCtrl.UpdateReservation)
			reservations.DELETE("/:reservation_id", reservationCtrl.DeleteReservation)
		}
	}

	return r
}
