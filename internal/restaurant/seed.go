package restaurant

// Cities returns the fixed city list shown during onboarding.
func Cities() []City {
	return []City{
		{
			ID:       "delhi",
			Name:     "Delhi",
			Subtitle: "India Gate & Old Delhi flavours",
			ImageURL: "https://amoghavarshaiaskas.in/wp-content/uploads/2024/10/Red-Fort-Complex.jpg",
		},
		{
			ID:       "mumbai",
			Name:     "Mumbai",
			Subtitle: "Gateway of India & sea breeze bites",
			ImageURL: "https://miro.medium.com/v2/resize:fit:1400/1*DTXfmmagnoAxRcUEWdajMw.jpeg",
		},
		{
			ID:       "jaipur",
			Name:     "Jaipur",
			Subtitle: "Hawa Mahal & royal treats",
			ImageURL: "https://res.cloudinary.com/ddjuftfy2/image/upload/f_webp,c_fill,q_auto/memphis/xlarge/1162399525_Hawa%20Mahal.jpg",
		},
		{
			ID:       "bengaluru",
			Name:     "Bengaluru",
			Subtitle: "Garden city snacks & coffee",
			ImageURL: "https://yometro.com/images/places/bangalore-palace.jpg",
		},
	}
}

// DefaultRestaurants is the demo restaurant set every city shows.
func DefaultRestaurants() []*Restaurant {
	return []*Restaurant{
		{
			ID:         "order-plus-kitchen",
			Name:       "Order Plus Kitchen",
			Tagline:    "Pizzas, burgers & everyday cravings",
			ImageURL:   "https://images.pexels.com/photos/70497/pexels-photo-70497.jpeg?auto=compress&cs=tinysrgb&w=800",
			Rating:     4.4,
			ETAMinutes: 30,
		},
		{
			ID:         "spice-route",
			Name:       "Spice Route",
			Tagline:    "Starters & tandoori specials",
			ImageURL:   "https://images.pexels.com/photos/7259900/pexels-photo-7259900.jpeg?auto=compress&cs=tinysrgb&w=800",
			Rating:     4.2,
			ETAMinutes: 35,
		},
		{
			ID:         "brew-and-bite",
			Name:       "Brew & Bite",
			Tagline:    "Coffee, shakes & quick snacks",
			ImageURL:   "https://images.pexels.com/photos/302899/pexels-photo-302899.jpeg?auto=compress&cs=tinysrgb&w=800",
			Rating:     4.6,
			ETAMinutes: 25,
		},
	}
}
