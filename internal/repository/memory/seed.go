package memory

import "dreamdwell/internal/model"

// seedProperties are the demo listings served by the development store.
var seedProperties = []model.Property{
	{
		ID:          "1",
		Title:       "Modern Family Home",
		Price:       750000,
		Location:    "Beverly Hills, CA",
		Bedrooms:    4,
		Bathrooms:   3,
		Area:        2500,
		Image:       "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=600&h=400&fit=crop",
		Type:        model.TypeSale,
		Featured:    true,
		Description: "Beautiful modern home with stunning architecture",
		UserID:      "demo-user",
	},
	{
		ID:          "2",
		Title:       "Luxury Downtown Apartment",
		Price:       3500,
		Location:    "Manhattan, NY",
		Bedrooms:    2,
		Bathrooms:   2,
		Area:        1200,
		Image:       "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=600&h=400&fit=crop",
		Type:        model.TypeRent,
		Description: "Luxury apartment in the heart of the city",
		UserID:      "demo-user",
	},
	{
		ID:          "3",
		Title:       "Cozy Suburban House",
		Price:       450000,
		Location:    "Austin, TX",
		Bedrooms:    3,
		Bathrooms:   2,
		Area:        1800,
		Image:       "https://images.unsplash.com/photo-1605146769289-440113cc3d00?w=600&h=400&fit=crop",
		Type:        model.TypeSale,
		Description: "Perfect family home in quiet neighborhood",
		UserID:      "demo-user",
	},
	{
		ID:          "4",
		Title:       "Ocean View Villa",
		Price:       1200000,
		Location:    "Malibu, CA",
		Bedrooms:    5,
		Bathrooms:   4,
		Area:        3500,
		Image:       "https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=600&h=400&fit=crop",
		Type:        model.TypeSale,
		Featured:    true,
		Description: "Stunning villa with panoramic ocean views",
		UserID:      "demo-user",
	},
	{
		ID:          "5",
		Title:       "Student Studio",
		Price:       1200,
		Location:    "Boston, MA",
		Bedrooms:    1,
		Bathrooms:   1,
		Area:        500,
		Image:       "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=600&h=400&fit=crop",
		Type:        model.TypeRent,
		Description: "Affordable studio apartment near university",
		UserID:      "demo-user",
	},
	{
		ID:          "6",
		Title:       "Historic Townhouse",
		Price:       650000,
		Location:    "Charleston, SC",
		Bedrooms:    3,
		Bathrooms:   3,
		Area:        2200,
		Image:       "https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=600&h=400&fit=crop",
		Type:        model.TypeSale,
		Description: "Charming historic home with modern updates",
		UserID:      "demo-user",
	},
}
