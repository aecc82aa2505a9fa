package catalog

import "cropconnect-backend/internal/model"

var seedReviews = []model.Review{
	{ID: "rev1", ReviewerName: "Vijay Sales", Rating: 5, Comment: "Great quality and fast delivery. Highly recommended.", Date: "2023-10-10"},
	{ID: "rev2", ReviewerName: "Meena Traders", Rating: 4, Comment: "Good product, but packaging could be better.", Date: "2023-09-25"},
	{ID: "rev3", ReviewerName: "Kisan Connect", Rating: 5, Comment: "Always fresh and reliable.", Date: "2023-09-15"},
}

// Seed returns the demo catalog.
func Seed() []model.Crop {
	return []model.Crop{
		{ID: "1", Name: "Tomatoes", StockKg: 500, PricePerKg: 30, SellerName: "Ram Kumar", Rating: 4.5,
			Description: "Fresh, ripe tomatoes from organic farms. Perfect for salads, sauces, and soups.",
			Reviews:     seedReviews[0:2], IsOrganic: true, IsSeasonal: true, SellerCategory: model.SellerFarmer},
		{ID: "2", Name: "Potatoes", StockKg: 1200, PricePerKg: 20, SellerName: "Sita Devi", Rating: 4.8,
			Description: "High-quality potatoes, ideal for a variety of dishes.",
			Reviews:     seedReviews, SellerCategory: model.SellerWholesaler},
		{ID: "3", Name: "Onions", StockKg: 800, PricePerKg: 25, SellerName: "Lakshman Farms", Rating: 4.2,
			Description: "Crisp and flavorful onions. A staple for any kitchen.",
			Reviews:     seedReviews[1:2], SellerCategory: model.SellerCooperative},
		{ID: "4", Name: "Carrots", StockKg: 300, PricePerKg: 40, SellerName: "Ganga Traders", Rating: 4.6,
			Description: "Sweet and crunchy carrots, rich in vitamins.",
			Reviews:     seedReviews[1:3], IsOrganic: true, SellerCategory: model.SellerFarmer},
		{ID: "5", Name: "Wheat", StockKg: 5000, PricePerKg: 22, SellerName: "Modern Agro", Rating: 4.9,
			Description: "Premium quality wheat grains, suitable for milling into flour.",
			SellerCategory: model.SellerCooperative},
		{ID: "6", Name: "Rice (Basmati)", StockKg: 2500, PricePerKg: 80, SellerName: "Himalayan Grains", Rating: 4.7,
			Description: "Aromatic long-grain Basmati rice, perfect for biryani and pulao.",
			Reviews:     seedReviews, IsSeasonal: true, SellerCategory: model.SellerWholesaler},
	}
}
