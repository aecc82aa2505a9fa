package session

import "cropconnect-backend/internal/model"

// DemoOrders is the order history a fresh demo session starts with.
func DemoOrders() []model.Order {
	return []model.Order{
		{ID: "ord1", CropName: "Wheat", SellerName: "Modern Agro", TotalAmount: 11000, Status: model.OrderDelivered, Date: "2023-10-15",
			Review: &model.OrderReview{Rating: 5, Comment: "Excellent quality wheat! Very happy with the purchase."}},
		{ID: "ord2", CropName: "Tomatoes", SellerName: "Ram Kumar", TotalAmount: 3000, Status: model.OrderDelivered, Date: "2023-10-20"},
		{ID: "ord3", CropName: "Onions", SellerName: "Lakshman Farms", TotalAmount: 5000, Status: model.OrderInstallmentPaid, Date: "2023-11-01"},
		{ID: "ord4", CropName: "Potatoes", SellerName: "Sita Devi", TotalAmount: 4000, Status: model.OrderBlocked, Date: "2023-11-05"},
	}
}
