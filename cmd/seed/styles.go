package main

import "sews/internal/usecase"

func sampleClothingStyles() []*usecase.ClothingStyleInput {
	return []*usecase.ClothingStyleInput{
		{
			Name:        "Casual T-Shirt",
			Description: "Comfortable cotton t-shirt perfect for everyday wear. Available in multiple colors.",
			Cost:        25000,
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=300&h=300&fit=crop",
		},
		{
			Name:        "Elegant Dress",
			Description: "Beautiful evening dress with intricate embroidery and flowing fabric.",
			Cost:        85000,
			Image:       "https://images.unsplash.com/photo-1539008835657-9e8e9680c956?w=300&h=300&fit=crop",
		},
		{
			Name:        "Business Suit",
			Description: "Professional tailored suit perfect for office meetings and formal events.",
			Cost:        150000,
			Image:       "https://images.unsplash.com/photo-1594938298603-c8148c4dae35?w=300&h=300&fit=crop",
		},
		{
			Name:        "Denim Jeans",
			Description: "Classic blue jeans with comfortable fit and durable fabric.",
			Cost:        45000,
			Image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?w=300&h=300&fit=crop",
		},
		{
			Name:        "Summer Blouse",
			Description: "Light and airy blouse perfect for hot summer days.",
			Cost:        35000,
			Image:       "https://images.unsplash.com/photo-1564257577-0f76d7166e22?w=300&h=300&fit=crop",
		},
		{
			Name:        "Winter Coat",
			Description: "Warm and stylish coat to keep you comfortable during cold weather.",
			Cost:        120000,
			Image:       "https://images.unsplash.com/photo-1544022613-e87ca75a784a?w=300&h=300&fit=crop",
		},
		{
			Name:        "Sports Hoodie",
			Description: "Comfortable hoodie perfect for workouts and casual activities.",
			Cost:        55000,
			Image:       "https://images.unsplash.com/photo-1556821840-3a9fac6de5f1?w=300&h=300&fit=crop",
		},
		{
			Name:        "Formal Shirt",
			Description: "Crisp white shirt ideal for business meetings and formal occasions.",
			Cost:        40000,
			Image:       "https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=300&h=300&fit=crop",
		},
		{
			Name:        "Maxi Dress",
			Description: "Flowing maxi dress with beautiful prints, perfect for special occasions.",
			Cost:        75000,
			Image:       "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=300&h=300&fit=crop",
		},
		{
			Name:        "Leather Jacket",
			Description: "Stylish leather jacket that adds edge to any outfit.",
			Cost:        180000,
			Image:       "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=300&h=300&fit=crop",
		},
		{
			Name:        "Polo Shirt",
			Description: "Classic polo shirt perfect for smart casual occasions.",
			Cost:        30000,
			Image:       "https://images.unsplash.com/photo-1586790170083-2f9ceadc732d?w=300&h=300&fit=crop",
		},
		{
			Name:        "Cocktail Dress",
			Description: "Elegant cocktail dress perfect for evening parties and events.",
			Cost:        95000,
			Image:       "https://images.unsplash.com/photo-1566479179817-c0b38a2b68e7?w=300&h=300&fit=crop",
		},
	}
}
