// Package delivery holds the curated delivery-partner directory. The data is
// editorial, not fetched: partner links and menus are maintained in-repo and
// served as-is.
package delivery

// Restaurant is one curated listing with deep links into partner apps.
type Restaurant struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	CuisineType    string   `json:"cuisine_type"`
	MinOrder       int      `json:"min_order"`
	DeliveryFee    int      `json:"delivery_fee"`
	DeliveryTime   string   `json:"delivery_time"`
	Rating         float64  `json:"rating"`
	ImageURL       string   `json:"image_url"`
	ShuttleLink    string   `json:"shuttle_link,omitempty"`
	BaeminLink     string   `json:"baemin_link,omitempty"`
	CoupangLink    string   `json:"coupang_link,omitempty"`
	PopularItems   []string `json:"popular_items"`
	PaymentMethods []string `json:"payment_methods"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type Partner struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Logo        string   `json:"logo"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Website     string   `json:"website"`
	AppIOS      string   `json:"app_ios"`
	AppAndroid  string   `json:"app_android"`
}

type PaymentMethod struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	SupportedCards []string `json:"supported_cards,omitempty"`
	Fee            string   `json:"fee"`
	Description    string   `json:"description"`
}

var cardMethods = []string{"card", "paypal"}

var restaurants = []Restaurant{
	{
		ID: "kyochon-hongdae", Name: "Kyochon Chicken (교촌치킨)", Category: "chicken",
		CuisineType: "Korean Fried Chicken", MinOrder: 17000, DeliveryFee: 3000,
		DeliveryTime: "30-45 min", Rating: 4.7,
		ImageURL:    "https://via.placeholder.com/300x200?text=Kyochon",
		ShuttleLink: "https://www.shuttledelivery.co.kr/",
		BaeminLink:  "baemin://restaurant/kyochon",
		PopularItems: []string{"Honey Combo", "Red Combo", "Soy Garlic"}, PaymentMethods: cardMethods,
	},
	{
		ID: "bbq-gangnam", Name: "BBQ Chicken", Category: "chicken",
		CuisineType: "Korean Fried Chicken", MinOrder: 18000, DeliveryFee: 3000,
		DeliveryTime: "35-50 min", Rating: 4.6,
		ImageURL:    "https://via.placeholder.com/300x200?text=BBQ",
		ShuttleLink: "https://www.shuttledelivery.co.kr/",
		BaeminLink:  "baemin://restaurant/bbq", CoupangLink: "coupangeats://restaurant/bbq",
		PopularItems: []string{"Golden Olive", "Cheese Ball", "Hot Wing"}, PaymentMethods: cardMethods,
	},
	{
		ID: "pizzahut-seoul", Name: "Pizza Hut Korea", Category: "pizza",
		CuisineType: "Western Pizza", MinOrder: 15000, DeliveryFee: 2000,
		DeliveryTime: "40-55 min", Rating: 4.4,
		ImageURL:    "https://via.placeholder.com/300x200?text=PizzaHut",
		ShuttleLink: "https://www.shuttledelivery.co.kr/",
		BaeminLink:  "baemin://restaurant/pizzahut", CoupangLink: "coupangeats://restaurant/pizzahut",
		PopularItems: []string{"Super Supreme", "Cheese Lover", "Pepperoni"}, PaymentMethods: cardMethods,
	},
	{
		ID: "dominos-myeongdong", Name: "Domino's Pizza", Category: "pizza",
		CuisineType: "Western Pizza", MinOrder: 14000, DeliveryFee: 2000,
		DeliveryTime: "30-45 min", Rating: 4.5,
		ImageURL:    "https://via.placeholder.com/300x200?text=Dominos",
		ShuttleLink: "https://www.shuttledelivery.co.kr/",
		BaeminLink:  "baemin://restaurant/dominos",
		PopularItems: []string{"New York Pizza", "Potato Pizza", "Bulgogi Pizza"}, PaymentMethods: cardMethods,
	},
	{
		ID: "mcdonalds-gangnam", Name: "McDonald's", Category: "western",
		CuisineType: "Fast Food", MinOrder: 10000, DeliveryFee: 2000,
		DeliveryTime: "25-35 min", Rating: 4.3,
		ImageURL:    "https://via.placeholder.com/300x200?text=McDonalds",
		ShuttleLink: "https://www.shuttledelivery.co.kr/",
		BaeminLink:  "baemin://restaurant/mcdonalds", CoupangLink: "coupangeats://restaurant/mcdonalds",
		PopularItems: []string{"Big Mac", "Bulgogi Burger", "McNuggets"}, PaymentMethods: cardMethods,
	},
	{
		ID: "burgerking-hongdae", Name: "Burger King", Category: "western",
		CuisineType: "Fast Food", MinOrder: 9000, DeliveryFee: 2000,
		DeliveryTime: "30-40 min", Rating: 4.4,
		ImageURL:    "https://via.placeholder.com/300x200?text=BurgerKing",
		ShuttleLink: "https://www.shuttledelivery.co.kr/",
		BaeminLink:  "baemin://restaurant/burgerking", CoupangLink: "coupangeats://restaurant/burgerking",
		PopularItems: []string{"Whopper", "Cheese Whopper", "Onion Rings"}, PaymentMethods: cardMethods,
	},
}

var categories = []Category{
	{ID: "chicken", Name: "Korean Fried Chicken", Icon: "🍗", Description: "Famous Korean Fried Chicken chains"},
	{ID: "pizza", Name: "Pizza & Italian", Icon: "🍕", Description: "Pizza and Italian cuisine"},
	{ID: "korean", Name: "Korean Food", Icon: "🍚", Description: "Traditional Korean dishes"},
	{ID: "western", Name: "Western & Fast Food", Icon: "🍔", Description: "Burgers and western fast food"},
	{ID: "chinese", Name: "Chinese Food", Icon: "🥡", Description: "Korean-Chinese classics"},
	{ID: "japanese", Name: "Japanese Food", Icon: "🍣", Description: "Sushi, ramen and donburi"},
}

var partners = []Partner{
	{
		ID: "shuttle", Name: "Shuttle Delivery", Logo: "🚀",
		Description: "Foreign-friendly delivery service",
		Features: []string{
			"No Korean phone number required",
			"International cards accepted",
			"English support",
			"Hotel delivery",
		},
		Website:    "https://www.shuttledelivery.co.kr/",
		AppIOS:     "https://apps.apple.com/app/shuttle-delivery",
		AppAndroid: "https://play.google.com/store/apps/details?id=com.shuttle",
	},
	{
		ID: "baemin", Name: "Baemin (배달의민족)", Logo: "🛵",
		Description: "Korea's #1 delivery app",
		Features: []string{
			"Largest restaurant selection",
			"Foreign phone numbers supported (2024+)",
			"Korean language only",
		},
		Website:    "https://www.baemin.com/",
		AppIOS:     "https://apps.apple.com/app/baemin",
		AppAndroid: "https://play.google.com/store/apps/details?id=com.sampleapp",
	},
	{
		ID: "coupang", Name: "Coupang Eats", Logo: "🚚",
		Description: "Fast delivery with English interface",
		Features: []string{
			"English interface available",
			"Fast delivery",
		},
		Website:    "https://www.coupangeats.com/",
		AppIOS:     "https://apps.apple.com/app/coupang-eats",
		AppAndroid: "https://play.google.com/store/apps/details?id=com.coupang.eats",
	},
}

var paymentMethods = []PaymentMethod{
	{
		ID: "card", Name: "Credit/Debit Card",
		SupportedCards: []string{"Visa", "Mastercard", "Amex"},
		Fee:            "0%", Description: "International cards accepted",
	},
	{
		ID: "paypal", Name: "PayPal",
		Fee: "3.4% + fixed fee", Description: "Secure PayPal payment",
	},
}

// List returns restaurants filtered by category (empty matches all) with
// page/limit slicing, plus the pre-pagination total.
func List(category string, page, limit int) ([]Restaurant, int) {
	filtered := make([]Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if category == "" || r.Category == category {
			filtered = append(filtered, r)
		}
	}
	total := len(filtered)

	start := (page - 1) * limit
	if start >= total {
		return []Restaurant{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return filtered[start:end], total
}

// Get looks up a restaurant by id.
func Get(id string) (*Restaurant, bool) {
	for i := range restaurants {
		if restaurants[i].ID == id {
			return &restaurants[i], true
		}
	}
	return nil, false
}

func Categories() []Category           { return categories }
func Partners() []Partner              { return partners }
func PaymentMethods() []PaymentMethod  { return paymentMethods }
