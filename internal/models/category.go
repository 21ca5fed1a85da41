package models

// Category is a member of the fixed transaction category catalog.
// Categories are not user-extensible: the income and expense sets below are
// the only valid values, and the two sets are disjoint.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// IncomeCategories is the fixed set of income categories.
var IncomeCategories = []Category{
	{ID: "salary", Name: "Salary", Icon: "Briefcase"},
	{ID: "freelance", Name: "Freelance", Icon: "Laptop"},
	{ID: "investment", Name: "Investment", Icon: "TrendingUp"},
	{ID: "gift", Name: "Gift", Icon: "Gift"},
	{ID: "other", Name: "Other", Icon: "CircleDollarSign"},
}

// ExpenseCategories is the fixed set of expense categories.
var ExpenseCategories = []Category{
	{ID: "food", Name: "Food", Icon: "Utensils"},
	{ID: "transport", Name: "Transport", Icon: "Car"},
	{ID: "bills", Name: "Bills", Icon: "FileText"},
	{ID: "housing", Name: "Housing", Icon: "Home"},
	{ID: "entertainment", Name: "Entertainment", Icon: "Gamepad2"},
	{ID: "health", Name: "Health", Icon: "HeartPulse"},
	{ID: "shopping", Name: "Shopping", Icon: "ShoppingBag"},
	{ID: "education", Name: "Education", Icon: "School"},
	{ID: "other", Name: "Other", Icon: "CircleDollarSign"},
}

// CategoriesForType returns the category set for the given transaction type.
func CategoriesForType(t TransactionType) []Category {
	if t == TransactionTypeIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// CategoryByID looks up a category by ID within the set for the given
// transaction type. The second return value reports whether it exists.
func CategoryByID(t TransactionType, id string) (Category, bool) {
	for _, c := range CategoriesForType(t) {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
