package domain

// Category classifies transactions, with a display icon and color. IDs
// are unique across both types combined.
type Category struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Icon  string          `json:"icon"`
	Color string          `json:"color"`
	Type  TransactionType `json:"type"`
}

// DefaultCategories is the seed set written the first time the category
// collection is read from an empty store.
var DefaultCategories = []*Category{
	{ID: "food", Name: "Food & Dining", Icon: "food", Color: "#FF9800", Type: TransactionTypeExpense},
	{ID: "transport", Name: "Transportation", Icon: "car", Color: "#2196F3", Type: TransactionTypeExpense},
	{ID: "shopping", Name: "Shopping", Icon: "cart", Color: "#9C27B0", Type: TransactionTypeExpense},
	{ID: "bills", Name: "Bills & Utilities", Icon: "file-document-outline", Color: "#F44336", Type: TransactionTypeExpense},
	{ID: "entertainment", Name: "Entertainment", Icon: "movie-outline", Color: "#E91E63", Type: TransactionTypeExpense},
	{ID: "health", Name: "Health & Medical", Icon: "medical-bag", Color: "#4CAF50", Type: TransactionTypeExpense},
	{ID: "education", Name: "Education", Icon: "school-outline", Color: "#3F51B5", Type: TransactionTypeExpense},
	{ID: "other_expense", Name: "Other", Icon: "dots-horizontal", Color: "#607D8B", Type: TransactionTypeExpense},
	{ID: "salary", Name: "Salary", Icon: "cash", Color: "#4CAF50", Type: TransactionTypeIncome},
	{ID: "freelance", Name: "Freelance", Icon: "laptop", Color: "#00BCD4", Type: TransactionTypeIncome},
	{ID: "gifts", Name: "Gifts", Icon: "gift-outline", Color: "#8BC34A", Type: TransactionTypeIncome},
	{ID: "investments", Name: "Investments", Icon: "chart-line", Color: "#FFC107", Type: TransactionTypeIncome},
	{ID: "other_income", Name: "Other", Icon: "dots-horizontal", Color: "#009688", Type: TransactionTypeIncome},
}

type CategoryRepository interface {
	List() ([]*Category, error)
	Save(category *Category) (*Category, error)
	Update(category *Category) (*Category, error)
	Delete(id string) error
	Replace(categories []*Category) error
	Clear() error
}
