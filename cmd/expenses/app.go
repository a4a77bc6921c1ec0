package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"expenses/internal/core"
	"expenses/internal/ledger"
)

// app is the interactive menu over the ledger. All business rules stay in
// the ledger; this layer only parses input and renders tables.
type app struct {
	ledger *ledger.Ledger
	in     *bufio.Reader
	out    io.Writer
}

func newApp(led *ledger.Ledger, in io.Reader, out io.Writer) *app {
	return &app{
		ledger: led,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Run drives the menu loop until the user exits or input ends.
func (a *app) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to Personal Expense Tracker!")

	for {
		a.displayMenu()
		choice, err := a.readLine("Enter your choice (1-6): ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			a.addExpense(ctx)
		case "2":
			a.viewAllExpenses(ctx)
		case "3":
			a.viewExpensesByCategory(ctx)
		case "4":
			a.viewSpendingSummary(ctx)
		case "5":
			a.viewTotalSpending(ctx)
		case "6":
			fmt.Fprintln(a.out, "\nThank you for using Personal Expense Tracker!")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please enter a number between 1 and 6.")
		}
	}
}

func (a *app) displayMenu() {
	fmt.Fprintln(a.out, "\n"+strings.Repeat("=", 50))
	fmt.Fprintln(a.out, "       PERSONAL EXPENSE TRACKER")
	fmt.Fprintln(a.out, strings.Repeat("=", 50))
	fmt.Fprintln(a.out, "1. Add New Expense")
	fmt.Fprintln(a.out, "2. View All Expenses")
	fmt.Fprintln(a.out, "3. View Expenses by Category")
	fmt.Fprintln(a.out, "4. View Spending Summary")
	fmt.Fprintln(a.out, "5. View Total Spending")
	fmt.Fprintln(a.out, "6. Exit")
	fmt.Fprintln(a.out, strings.Repeat("-", 50))
}

func (a *app) addExpense(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Add New Expense ---")

	amountStr, err := a.readLine("Enter amount ($): ")
	if err != nil {
		return
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Error: Please enter a valid amount!")
		return
	}
	if amount <= 0 {
		fmt.Fprintln(a.out, "Error: Amount must be positive!")
		return
	}

	category, ok := a.chooseCategory()
	if !ok {
		return
	}

	description, err := a.readLine("Enter description: ")
	if err != nil {
		return
	}

	expense, err := a.ledger.AddExpense(ctx, amount, string(category), description)
	if err != nil {
		fmt.Fprintf(a.out, "✗ Failed to save expense: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, "\n✓ Expense added successfully!")
	fmt.Fprintf(a.out, "  Amount: $%s\n", expense.Amount)
	fmt.Fprintf(a.out, "  Category: %s\n", expense.Category)
	fmt.Fprintf(a.out, "  Description: %s\n", expense.Description)
}

func (a *app) viewAllExpenses(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- All Expenses ---")

	expenses, err := a.ledger.Expenses(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if len(expenses) == 0 {
		fmt.Fprintln(a.out, "No expenses found.")
		return
	}

	fmt.Fprintf(a.out, "\n%-4s %-12s %-15s %-10s %s\n", "ID", "Date", "Category", "Amount", "Description")
	fmt.Fprintln(a.out, strings.Repeat("-", 70))
	for _, e := range expenses {
		fmt.Fprintf(a.out, "%-4d %-12s %-15s $%-9s %s\n",
			e.ID, e.Date.Format("2006-01-02"), e.Category, e.Amount, e.Description)
	}
	fmt.Fprintln(a.out, strings.Repeat("-", 70))
	fmt.Fprintf(a.out, "%-41s $%s\n", "TOTAL:", core.Total(expenses))
}

func (a *app) viewExpensesByCategory(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- View by Category ---")

	category, ok := a.chooseCategory()
	if !ok {
		return
	}

	expenses, err := a.ledger.ExpensesByCategory(ctx, string(category))
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if len(expenses) == 0 {
		fmt.Fprintf(a.out, "No expenses found for category: %s\n", category)
		return
	}

	fmt.Fprintf(a.out, "\n--- %s Expenses ---\n", category)
	fmt.Fprintf(a.out, "%-12s %-10s %s\n", "Date", "Amount", "Description")
	fmt.Fprintln(a.out, strings.Repeat("-", 50))
	for _, e := range expenses {
		fmt.Fprintf(a.out, "%-12s $%-9s %s\n",
			e.Date.Format("2006-01-02"), e.Amount, e.Description)
	}
	fmt.Fprintln(a.out, strings.Repeat("-", 50))
	fmt.Fprintf(a.out, "Total for %s: $%s\n", category, core.Total(expenses))
}

func (a *app) viewSpendingSummary(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Spending Summary ---")

	summary, err := a.ledger.CategorySummary(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if len(summary) == 0 {
		fmt.Fprintln(a.out, "No expenses to summarize.")
		return
	}

	var totalCents int64
	for _, m := range summary {
		totalCents += m.Cents
	}
	total := core.Money{Cents: totalCents}

	fmt.Fprintf(a.out, "\n%-15s %-10s %s\n", "Category", "Amount", "Percentage")
	fmt.Fprintln(a.out, strings.Repeat("-", 35))
	for _, entry := range core.SortedSummary(summary) {
		percentage := 0.0
		if totalCents > 0 {
			percentage = float64(entry.Amount.Cents) / float64(totalCents) * 100
		}
		fmt.Fprintf(a.out, "%-15s $%-9s %.1f%%\n", entry.Category, entry.Amount, percentage)
	}
	fmt.Fprintln(a.out, strings.Repeat("-", 35))
	fmt.Fprintf(a.out, "%-15s $%s 100.0%%\n", "TOTAL:", total)
}

func (a *app) viewTotalSpending(ctx context.Context) {
	expenses, err := a.ledger.Expenses(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	total := core.Total(expenses)

	fmt.Fprintln(a.out, "\n--- Total Spending ---")
	fmt.Fprintf(a.out, "Total Expenses: %d\n", len(expenses))
	fmt.Fprintf(a.out, "Total Amount: $%s\n", total)

	if len(expenses) > 0 {
		average := total.Float() / float64(len(expenses))
		fmt.Fprintf(a.out, "Average per Expense: $%.2f\n", average)
	}
}

// chooseCategory lists the fixed category set and reads a 1-based pick.
func (a *app) chooseCategory() (core.Category, bool) {
	categories := a.ledger.Categories()

	fmt.Fprintln(a.out, "\nAvailable categories:")
	for i, c := range categories {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, c)
	}

	choiceStr, err := a.readLine(fmt.Sprintf("Choose category (1-%d): ", len(categories)))
	if err != nil {
		return "", false
	}
	choice, err := strconv.Atoi(choiceStr)
	if err != nil || choice < 1 || choice > len(categories) {
		fmt.Fprintln(a.out, "Invalid choice!")
		return "", false
	}
	return categories[choice-1], true
}

func (a *app) readLine(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
