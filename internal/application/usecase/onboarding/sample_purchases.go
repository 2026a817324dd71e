package onboarding

// SamplePurchase is one of the purchases a new account is seeded with.
type SamplePurchase struct {
	Description string
	Amount      int64
}

// SamplePurchases is the demo spending history, in posting order.
var SamplePurchases = []SamplePurchase{
	{Description: "HEB Grocery Store", Amount: 1200},
	{Description: "Starbucks Coffee", Amount: 45},
	{Description: "Shell Gas Station", Amount: 85},
	{Description: "Austin Energy Bill", Amount: 1200},
	{Description: "Target Shopping", Amount: 65},
	{Description: "Netflix Subscription", Amount: 25},
	{Description: "Whole Foods Market", Amount: 150},
	{Description: "Chipotle Mexican Grill", Amount: 35},
	{Description: "AT&T Mobile Bill", Amount: 200},
	{Description: "AMC Theaters", Amount: 75},
	{Description: "CVS Pharmacy", Amount: 90},
	{Description: "Dunkin Donuts", Amount: 40},
	{Description: "Rent Payment", Amount: 300},
	{Description: "Uber Ride", Amount: 55},
	{Description: "Walmart Supercenter", Amount: 120},
	{Description: "Spotify Premium", Amount: 15},
	{Description: "Costco Wholesale", Amount: 180},
	{Description: "McDonald's", Amount: 30},
	{Description: "Car Insurance Payment", Amount: 250},
	{Description: "Amazon Prime", Amount: 50},
	{Description: "Trader Joe's", Amount: 95},
	{Description: "Subway", Amount: 20},
	{Description: "Chevron Gas Station", Amount: 110},
	{Description: "Zara Clothing", Amount: 70},
	{Description: "Kroger Grocery", Amount: 160},
	{Description: "Hulu Subscription", Amount: 12},
	{Description: "Safeway Grocery", Amount: 140},
	{Description: "Pizza Hut", Amount: 28},
	{Description: "Health Insurance", Amount: 220},
	{Description: "Regal Cinemas", Amount: 60},
	{Description: "Sprouts Farmers Market", Amount: 105},
	{Description: "Taco Bell", Amount: 18},
	{Description: "Exxon Gas Station", Amount: 80},
	{Description: "H&M Clothing", Amount: 45},
	{Description: "Publix Supermarket", Amount: 130},
	{Description: "Apple Music", Amount: 8},
	{Description: "Albertsons Grocery", Amount: 170},
	{Description: "KFC", Amount: 35},
	{Description: "Life Insurance", Amount: 190},
	{Description: "Cinemark Theaters", Amount: 42},
	{Description: "Food Lion Grocery", Amount: 115},
	{Description: "Burger King", Amount: 22},
	{Description: "BP Gas Station", Amount: 75},
	{Description: "Forever 21", Amount: 38},
	{Description: "Giant Eagle Grocery", Amount: 125},
	{Description: "Disney+ Subscription", Amount: 14},
	{Description: "Wegmans Grocery", Amount: 155},
	{Description: "Wendy's", Amount: 32},
	{Description: "Dental Insurance", Amount: 210},
	{Description: "Marcus Theaters", Amount: 48},
	{Description: "Harris Teeter Grocery", Amount: 100},
	{Description: "Arby's", Amount: 26},
	{Description: "Mobil Gas Station", Amount: 85},
	{Description: "Gap Clothing", Amount: 52},
	{Description: "Stop & Shop Grocery", Amount: 135},
	{Description: "HBO Max Subscription", Amount: 16},
	{Description: "King Soopers Grocery", Amount: 145},
	{Description: "Popeyes", Amount: 29},
	{Description: "Vision Insurance", Amount: 175},
	{Description: "AMC Dine-In Theaters", Amount: 55},
}
