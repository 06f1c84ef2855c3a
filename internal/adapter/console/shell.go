// Package console runs the interactive store menu over a reader and writer.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
)

const menu = `
    Store Menu
    ----------
    1. List all products in store
    2. Show total amount in store
    3. Make an order
    4. Quit

`

var errInputClosed = errors.New("input closed")

type Shell struct {
	store    *service.Store
	in       *bufio.Scanner
	out      io.Writer
	errColor *color.Color
}

func NewShell(store *service.Store, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		store:    store,
		in:       bufio.NewScanner(in),
		out:      out,
		errColor: color.New(color.FgRed),
	}
}

// Run shows the menu until the user quits, the input ends or the store has
// no active products left.
func (s *Shell) Run() error {
	err := s.loop()
	if errors.Is(err, errInputClosed) {
		return s.in.Err()
	}
	return err
}

func (s *Shell) loop() error {
	for {
		products, err := s.store.AllActiveProducts()
		if err != nil {
			fmt.Fprintln(s.out)
			s.printError(err)
			fmt.Fprintln(s.out, "Exiting the application.")
			return nil
		}

		fmt.Fprint(s.out, menu)
		choice, err := s.prompt("Please choose a number: ")
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out)

		switch choice {
		case "1":
			s.printProducts(products)
		case "2":
			total, err := s.store.TotalQuantity()
			if err != nil {
				s.printError(err)
				break
			}
			fmt.Fprintf(s.out, "There is a total of %d products in the store.\n", total)
		case "3":
			s.printProducts(products)
			fmt.Fprintln(s.out)
			if err := s.order(products); err != nil {
				return err
			}
		case "4":
			answer, err := s.prompt("Are you sure you want to quit? (y/n): ")
			if err != nil {
				return err
			}
			if strings.EqualFold(answer, "y") {
				fmt.Fprintln(s.out, "Thank you for visiting Best Buy!")
				fmt.Fprintln(s.out, "Goodbye!")
				return nil
			}
			continue
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}

		if err := s.pause(); err != nil {
			return err
		}
	}
}

// order collects items until the user enters 0. Each item is bought on its
// own, so a failed item leaves the earlier ones bought.
func (s *Shell) order(products []domain.Purchasable) error {
	total := decimal.Zero
	for {
		input, err := s.prompt("Select the product number of the item that you want (0 if none): ")
		if err != nil {
			return err
		}
		choice, convErr := strconv.Atoi(input)
		if convErr != nil || choice < 0 {
			fmt.Fprintln(s.out, "Please enter a valid product number.")
			continue
		}
		if choice == 0 {
			break
		}
		if choice > len(products) {
			fmt.Fprintln(s.out, "\nThe selected product number is invalid.")
			fmt.Fprintln(s.out)
			continue
		}
		product := products[choice-1]

		input, err = s.prompt("Enter the quantity: ")
		if err != nil {
			return err
		}
		quantity, convErr := strconv.Atoi(input)
		if convErr != nil {
			fmt.Fprintln(s.out, "Please enter a valid number for quantity.")
			continue
		}
		if quantity <= 0 {
			fmt.Fprintln(s.out, "Please enter a quantity greater than zero.")
			continue
		}

		price, err := s.store.Order([]domain.OrderItem{{Product: product, Quantity: quantity}})
		if err != nil {
			s.printError(err)
			if err := s.pause(); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(s.out, "%d units of %s added to list.\n\n", quantity, product.Name())
		total = total.Add(price)
	}

	if total.IsPositive() {
		fmt.Fprintf(s.out, "\nOrder made! The total payment is: $%s\n", total.StringFixed(2))
	}
	return nil
}

func (s *Shell) printProducts(products []domain.Purchasable) {
	for i, p := range products {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, p.Show())
	}
}

func (s *Shell) printError(err error) {
	s.errColor.Fprintln(s.out, err)
}

func (s *Shell) pause() error {
	_, err := s.prompt("\nPress Enter to continue.\n")
	return err
}

func (s *Shell) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}
