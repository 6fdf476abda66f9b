package menu

// DefaultItems is the demo menu every restaurant serves. Seeding is
// keyed by name so re-running it never duplicates rows.
func DefaultItems() []*Item {
	return []*Item{
		{
			Name:        "Margherita Pizza",
			Description: "Classic cheese & tomato pizza with fresh basil.",
			Price:       299,
			Category:    CategoryPizza,
			ImageURL:    "https://images.pexels.com/photos/4109084/pexels-photo-4109084.jpeg?auto=compress&cs=tinysrgb&w=800",
			IsAvailable: true,
		},
		{
			Name:        "Veggie Burger",
			Description: "Grilled veggie patty with lettuce, tomato & cheese.",
			Price:       199,
			Category:    CategoryBurger,
			ImageURL:    "https://images.pexels.com/photos/1639562/pexels-photo-1639562.jpeg?auto=compress&cs=tinysrgb&w=800",
			IsAvailable: true,
		},
		{
			Name:        "French Fries",
			Description: "Crispy golden fries with a side of ketchup.",
			Price:       99,
			Category:    CategorySides,
			ImageURL:    "https://images.pexels.com/photos/1583884/pexels-photo-1583884.jpeg?auto=compress&cs=tinysrgb&w=800",
			IsAvailable: true,
		},
		{
			Name:        "Cold Coffee",
			Description: "Iced coffee with milk and a touch of sugar.",
			Price:       129,
			Category:    CategoryBeverage,
			ImageURL:    "https://images.pexels.com/photos/302899/pexels-photo-302899.jpeg?auto=compress&cs=tinysrgb&w=800",
			IsAvailable: true,
		},
		{
			Name:        "Paneer Tikka",
			Description: "Char-grilled cottage cheese with peppers & spices.",
			Price:       249,
			Category:    "Starters",
			ImageURL:    "https://images.pexels.com/photos/7259900/pexels-photo-7259900.jpeg?auto=compress&cs=tinysrgb&w=800",
			IsAvailable: true,
		},
		{
			Name:        "White Sauce Pasta",
			Description: "Creamy penne pasta tossed with herbs & veggies.",
			Price:       279,
			Category:    "Pasta",
			ImageURL:    "https://images.pexels.com/photos/1437267/pexels-photo-1437267.jpeg?auto=compress&cs=tinysrgb&w=800",
			IsAvailable: true,
		},
		{
			Name:        "Grilled Sandwich",
			Description: "Loaded veggie sandwich with cheese, grilled to perfection.",
			Price:       159,
			Category:    "Snacks",
			ImageURL:    "https://images.pexels.com/photos/1600711/pexels-photo-1600711.jpeg?auto=compress&cs=tinysrgb&w=800",
			IsAvailable: true,
		},
		{
			Name:        "Chocolate Brownie",
			Description: "Warm gooey brownie topped with chocolate sauce.",
			Price:       149,
			Category:    "Dessert",
			ImageURL:    "https://images.pexels.com/photos/4109994/pexels-photo-4109994.jpeg?auto=compress&cs=tinysrgb&w=800",
			IsAvailable: true,
		},
		{
			Name:        "Fresh Lime Soda",
			Description: "Refreshing lemon soda, sweet or salted.",
			Price:       79,
			Category:    CategoryBeverage,
			ImageURL:    "https://images.pexels.com/photos/96974/pexels-photo-96974.jpeg?auto=compress&cs=tinysrgb&w=800",
			IsAvailable: true,
		},
	}
}
