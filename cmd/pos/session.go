package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tiendapos/inventory-service/internal/checkout"
	checkoutdto "github.com/tiendapos/inventory-service/internal/checkout/dto"
	"github.com/tiendapos/inventory-service/internal/model"
	"github.com/tiendapos/inventory-service/internal/price"
	pricedto "github.com/tiendapos/inventory-service/internal/price/dto"
	"github.com/tiendapos/inventory-service/internal/sales"
	"github.com/tiendapos/inventory-service/internal/stock"
	stockdto "github.com/tiendapos/inventory-service/internal/stock/dto"
)

var reader = bufio.NewReader(os.Stdin)

// session is one terminal front-end session. It owns the pending cart and
// hands it to the checkout workflow at finalize time; the cart is never
// shared with another session.
type session struct {
	stockUC    stock.UseCase
	priceUC    price.UseCase
	salesUC    sales.UseCase
	checkoutUC checkout.UseCase
	cart       *model.Cart
}

func newSession(stockUC stock.UseCase, priceUC price.UseCase, salesUC sales.UseCase, checkoutUC checkout.UseCase) *session {
	return &session{
		stockUC:    stockUC,
		priceUC:    priceUC,
		salesUC:    salesUC,
		checkoutUC: checkoutUC,
		cart:       model.NewCart(),
	}
}

func (s *session) run(ctx context.Context) {
	for {
		fmt.Println("\n1: Add Sale Line to Cart")
		fmt.Println("2: Show Cart / Cancel a Line")
		fmt.Println("3: Finalize Sale")
		fmt.Println("4: Receive Merchandise")
		fmt.Println("5: New Price")
		fmt.Println("6: Modify Price")
		fmt.Println("7: List Stock")
		fmt.Println("8: List Prices")
		fmt.Println("9: List Sales")
		fmt.Println("X: Exit")
		choice := strings.ToUpper(readLine("Enter choice: "))

		switch choice {
		case "1":
			s.addSaleLine(ctx)
		case "2":
			s.showCart()
		case "3":
			s.finalizeSale(ctx)
		case "4":
			s.receiveMerchandise(ctx)
		case "5":
			s.newPrice(ctx)
		case "6":
			s.modifyPrice(ctx)
		case "7":
			s.listStock(ctx)
		case "8":
			s.listPrices(ctx)
		case "9":
			s.listSales(ctx)
		case "X":
			return
		default:
			fmt.Println("Unknown option")
		}
	}
}

func (s *session) addSaleLine(ctx context.Context) {
	name := readLine("Product name: ")
	quantity := readInt("Quantity: ")
	if quantity < 1 {
		fmt.Println("Quantity must be at least 1")
		return
	}

	// Snapshot the unit price at add time; later price changes do not
	// affect lines already in the cart.
	p, err := s.priceUC.Lookup(ctx, name)
	if err != nil {
		if errors.Is(err, model.ErrPriceNotFound) {
			fmt.Printf("No price registered for %s; set one first (option 5)\n", name)
		} else {
			fmt.Println("Error:", err)
		}
		return
	}

	item := s.cart.AddItem(name, quantity, p.SalePrice)
	fmt.Printf("Unit price: %s  Subtotal: %s  Cart total: %s\n",
		item.UnitPrice.StringFixed(2), item.Subtotal.StringFixed(2), s.cart.Total().StringFixed(2))
}

func (s *session) showCart() {
	if len(s.cart.Items) == 0 {
		fmt.Println("Cart is empty")
		return
	}
	for i, item := range s.cart.Items {
		status := ""
		if item.Cancelled {
			status = "  [cancelled]"
		}
		fmt.Printf("%d: %s x%d @ %s = %s%s\n",
			i+1, item.ProductName, item.Quantity,
			item.UnitPrice.StringFixed(2), item.Subtotal.StringFixed(2), status)
	}
	fmt.Printf("Total: %s\n", s.cart.Total().StringFixed(2))

	line := readLine("Line number to cancel (empty to keep all): ")
	if line == "" {
		return
	}
	idx, err := strconv.Atoi(line)
	if err != nil || idx < 1 || idx > len(s.cart.Items) {
		fmt.Println("Invalid line number")
		return
	}
	s.cart.Cancel(idx - 1)
	fmt.Printf("Line %d cancelled\n", idx)
}

func (s *session) finalizeSale(ctx context.Context) {
	result, err := s.checkoutUC.Commit(ctx, s.cart)
	if err != nil {
		fmt.Println("Commit failed, cart kept:", err)
		return
	}

	for _, line := range result.Lines {
		switch line.Status {
		case checkoutdto.LineCommitted:
			fmt.Printf("OK  %s x%d (sale #%d, stock now %d)\n",
				line.ProductName, line.Quantity, line.SaleID, line.NewQuantity)
		case checkoutdto.LineSkipped:
			fmt.Printf("--  %s x%d cancelled, not recorded\n", line.ProductName, line.Quantity)
		case checkoutdto.LineRejected:
			fmt.Printf("!!  %s x%d rejected: %s\n", line.ProductName, line.Quantity, line.Reason)
		}
	}
	fmt.Printf("Committed %d, skipped %d, rejected %d. Total: %s\n",
		result.Committed, result.Skipped, result.Rejected, result.Total.StringFixed(2))
}

func (s *session) receiveMerchandise(ctx context.Context) {
	mode := stockdto.ModeExistingProduct
	if strings.ToUpper(readLine("New product? (y/n): ")) == "Y" {
		mode = stockdto.ModeNewProduct
	}
	name := readLine("Product name: ")
	quantity := readInt("Quantity: ")

	result, err := s.stockUC.ReceiveMerchandise(ctx, &stockdto.ReceiveInput{
		Mode:     mode,
		Name:     name,
		Quantity: quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrDuplicateProduct):
			fmt.Printf("%s already exists; choose the existing-product option\n", name)
		case errors.Is(err, model.ErrProductNotFound):
			fmt.Printf("%s not found; choose the new-product option\n", name)
		default:
			fmt.Println("Error:", err)
		}
		return
	}

	if result.Created {
		fmt.Printf("Product %s created with id %d, stock %d\n", result.ProductName, result.ProductID, result.NewQuantity)
	} else {
		fmt.Printf("Added %d units of %s, new stock %d\n", quantity, result.ProductName, result.NewQuantity)
	}
}

func (s *session) newPrice(ctx context.Context) {
	input := readPriceInput()
	p, err := s.priceUC.CreatePrice(ctx, input)
	if err != nil {
		var exists *model.PriceExistsError
		switch {
		case errors.As(err, &exists):
			fmt.Printf("Current purchase price: %s\n", exists.Current.PurchasePrice.StringFixed(2))
			fmt.Printf("Current sale price: %s\n", exists.Current.SalePrice.StringFixed(2))
			fmt.Println("Price already set; use Modify Price (option 6)")
		case errors.Is(err, model.ErrProductNotFound):
			fmt.Printf("%s not found in stock; receive it first (option 4)\n", input.ProductName)
		default:
			fmt.Println("Error:", err)
		}
		return
	}
	fmt.Printf("Price created for %s: purchase %s, sale %s\n",
		p.ProductName, p.PurchasePrice.StringFixed(2), p.SalePrice.StringFixed(2))
}

func (s *session) modifyPrice(ctx context.Context) {
	input := readPriceInput()
	p, err := s.priceUC.UpdatePrice(ctx, input)
	if err != nil {
		if errors.Is(err, model.ErrPriceNotFound) {
			fmt.Printf("No price registered for %s; use New Price (option 5)\n", input.ProductName)
		} else {
			fmt.Println("Error:", err)
		}
		return
	}
	fmt.Printf("Price updated for %s: purchase %s, sale %s\n",
		p.ProductName, p.PurchasePrice.StringFixed(2), p.SalePrice.StringFixed(2))
}

func (s *session) listStock(ctx context.Context) {
	products, err := s.stockUC.ListAll(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, p := range products {
		fmt.Printf("%d: %s  stock %d\n", p.ID, p.Name, p.Quantity)
	}
}

func (s *session) listPrices(ctx context.Context) {
	prices, err := s.priceUC.ListAll(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, p := range prices {
		fmt.Printf("%d: %s  purchase %s  sale %s\n",
			p.ProductID, p.ProductName, p.PurchasePrice.StringFixed(2), p.SalePrice.StringFixed(2))
	}
}

func (s *session) listSales(ctx context.Context) {
	allSales, err := s.salesUC.ListAll(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, sale := range allSales {
		fmt.Printf("sale #%d: %s x%d (product id %d)\n",
			sale.ID, sale.ProductName, sale.Quantity, sale.ProductID)
	}
}

func readPriceInput() *pricedto.PriceInput {
	return &pricedto.PriceInput{
		ProductName:   readLine("Product name: "),
		PurchasePrice: readDecimal("Purchase price: "),
		SalePrice:     readDecimal("Sale price: "),
	}
}

func readLine(prompt string) string {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func readInt(prompt string) int64 {
	for {
		value, err := strconv.ParseInt(readLine(prompt), 10, 64)
		if err == nil {
			return value
		}
		fmt.Println("Enter a whole number")
	}
}

func readDecimal(prompt string) decimal.Decimal {
	for {
		value, err := decimal.NewFromString(readLine(prompt))
		if err == nil {
			return value
		}
		fmt.Println("Enter a number, e.g. 12.50")
	}
}
