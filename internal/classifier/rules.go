package classifier

// DefaultRules is the built-in keyword table for the Schedule C style
// categories this bookkeeping app uses. Order matters: specific merchant
// keywords sit above generic words like "DEPOSIT" so that, for example,
// "HOME DEPOT" never falls through to an income rule.
func DefaultRules() []Rule {
	return []Rule{
		// Fuel and vehicle
		{Keyword: "CHEVRON", Category: "Car and Truck Expenses", Subcategory: "Fuel"},
		{Keyword: "SUNSHINE", Category: "Car and Truck Expenses", Subcategory: "Fuel"},
		{Keyword: "EXXON", Category: "Car and Truck Expenses", Subcategory: "Fuel"},
		{Keyword: "SHELL", Category: "Car and Truck Expenses", Subcategory: "Fuel"},
		{Keyword: "WAWA", Category: "Car and Truck Expenses", Subcategory: "Fuel"},
		{Keyword: "RACETRAC", Category: "Car and Truck Expenses", Subcategory: "Fuel"},
		{Keyword: "AUTOZONE", Category: "Car and Truck Expenses", Subcategory: "Maintenance"},

		// Materials, repairs, supplies
		{Keyword: "HOME DEPOT", Category: "Repairs and Maintenance", Subcategory: "Materials"},
		{Keyword: "LOWE'S", Category: "Repairs and Maintenance", Subcategory: "Materials"},
		{Keyword: "LOWES", Category: "Repairs and Maintenance", Subcategory: "Materials"},
		{Keyword: "ACE HARDWARE", Category: "Repairs and Maintenance", Subcategory: "Materials"},
		{Keyword: "HARBOR FREIGHT", Category: "Supplies"},

		// Office
		{Keyword: "AMAZON", Category: "Office Expenses"},
		{Keyword: "OFFICE DEPOT", Category: "Office Expenses"},
		{Keyword: "STAPLES", Category: "Office Expenses"},
		{Keyword: "USPS", Category: "Office Expenses", Subcategory: "Shipping"},
		{Keyword: "FEDEX", Category: "Office Expenses", Subcategory: "Shipping"},

		// Utilities and communications
		{Keyword: "VERIZON", Category: "Utilities", Subcategory: "Phone"},
		{Keyword: "T-MOBILE", Category: "Utilities", Subcategory: "Phone"},
		{Keyword: "COMCAST", Category: "Utilities", Subcategory: "Internet"},
		{Keyword: "SPECTRUM", Category: "Utilities", Subcategory: "Internet"},
		{Keyword: "FPL", Category: "Utilities", Subcategory: "Electric"},
		{Keyword: "TECO", Category: "Utilities", Subcategory: "Electric"},

		// Insurance
		{Keyword: "GEICO", Category: "Insurance"},
		{Keyword: "PROGRESSIVE", Category: "Insurance"},
		{Keyword: "STATE FARM", Category: "Insurance"},

		// Meals
		{Keyword: "STARBUCKS", Category: "Meals and Entertainment"},
		{Keyword: "MCDONALD", Category: "Meals and Entertainment"},
		{Keyword: "CHICK-FIL-A", Category: "Meals and Entertainment"},
		{Keyword: "SUBWAY", Category: "Meals and Entertainment"},

		// Income. Generic words stay at the bottom of the table.
		{Keyword: "REMOTE ONLINE DEPOSIT", Category: "Business Income"},
		{Keyword: "DEPOSIT", Category: "Business Income"},
	}
}
