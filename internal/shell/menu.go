package shell

import "context"

const (
	choiceAdd = iota + 1
	choiceView
	choiceUpdate
	choiceUndo
	choiceLowStock
	choiceTransactions
	choiceSortByPrice
	choiceSortByValue
	choiceExit
	choiceSortBySKU
	choiceSummary
)

var menuLines = []string{
	"1 Add Product",
	"2 View Products",
	"3 Update Quantity",
	"4 Undo",
	"5 Low Stock",
	"6 Transactions",
	"7 Sort by Price",
	"8 Sort by Value",
	"9 Exit",
	"10 Sort by SKU",
	"11 Summary",
}

func (s *Shell) printMenu() {
	s.println()
	s.println("===== INVENTORY SYSTEM =====")
	for _, line := range menuLines {
		s.println(line)
	}
}

func (s *Shell) actions() map[int]func(context.Context) error {
	return map[int]func(context.Context) error{
		choiceAdd:          s.addProduct,
		choiceView:         s.viewProducts,
		choiceUpdate:       s.updateQuantity,
		choiceUndo:         s.undo,
		choiceLowStock:     s.showLowStock,
		choiceTransactions: s.showTransactions,
		choiceSortByPrice:  s.sortByPrice,
		choiceSortByValue:  s.sortByValue,
		choiceSortBySKU:    s.sortBySKU,
		choiceSummary:      s.showSummary,
	}
}
