package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"shopeasy/internal/checkout"
	"shopeasy/internal/storefront"
	"shopeasy/internal/storefront/client"
)

// A line-oriented storefront for driving a running shop API: browse the
// catalog, mutate the cart, and walk the checkout steps from a terminal.
func main() {
	var (
		apiURL string
		userID string
	)
	flag.StringVar(&apiURL, "api", "http://localhost:5000/api", "Base URL of the shop API")
	flag.StringVar(&userID, "user", "user-123", "User id for the cart")
	flag.Parse()

	api := client.New(apiURL, &http.Client{Timeout: 10 * time.Second})
	session := storefront.NewSession(api, userID)

	unsubscribe := session.CartCount().Subscribe(func(count int) {
		fmt.Printf("[cart: %d]\n", count)
	})
	defer unsubscribe()

	ctx := context.Background()
	if err := session.LoadCart(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "load cart: %v\n", err)
	}

	fmt.Println(`commands: products, cart, add <id> [qty], inc <id>, dec <id>, remove <id>, discount <code>, checkout, next, back, set <field> <value>, submit, quit`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s> ", session.Step())
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return
		}
		if err := run(ctx, session, fields); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			if errors.Is(err, storefront.ErrInvalidForm) {
				for field, msg := range session.FieldErrors() {
					fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
				}
			}
		}
	}
}

func run(ctx context.Context, session *storefront.Session, args []string) error {
	switch args[0] {
	case "products":
		products, err := session.Products(ctx)
		if err != nil {
			return err
		}
		for _, p := range products {
			fmt.Printf("%3d  %-24s $%.2f\n", p.ID, p.Name, p.Price)
		}
		return nil

	case "cart":
		printCart(session)
		return nil

	case "add":
		id, qty, err := parseIDAndQty(args)
		if err != nil {
			return err
		}
		return session.AddToCart(ctx, id, qty)

	case "inc":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		return session.IncrementQuantity(ctx, id)

	case "dec":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		return session.DecrementQuantity(ctx, id)

	case "remove":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		return session.RemoveItem(ctx, id)

	case "discount":
		code := ""
		if len(args) > 1 {
			code = args[1]
		}
		if err := session.ApplyDiscount(ctx, code); err != nil {
			return err
		}
		printCart(session)
		return nil

	case "checkout":
		printForm(session.Form())
		return nil

	case "set":
		if len(args) < 3 {
			return fmt.Errorf("usage: set <field> <value>")
		}
		return setField(session, args[1], strings.Join(args[2:], " "))

	case "next":
		if !session.Next() {
			fmt.Println("cannot advance:")
			for field, msg := range session.FieldErrors() {
				fmt.Printf("  %s: %s\n", field, msg)
			}
		}
		return nil

	case "back":
		session.Back()
		return nil

	case "submit":
		resp, err := session.Submit(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("order %s placed, status %s\n", resp.Order.ID, resp.Order.Status)
		if resp.NewDiscountCode != "" {
			fmt.Printf("you earned a discount code: %s\n", resp.NewDiscountCode)
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func setField(session *storefront.Session, field, value string) error {
	form := session.Form()
	switch field {
	case checkout.FieldName:
		form.Name = value
	case checkout.FieldEmail:
		form.Email = value
	case checkout.FieldAddress:
		form.Address = value
	case checkout.FieldCity:
		form.City = value
	case checkout.FieldZipCode:
		form.ZipCode = value
	case checkout.FieldCardNumber:
		form.CardNumber = value
	case checkout.FieldCardExpiry:
		form.CardExpiry = value
	case checkout.FieldCardCvv:
		form.CardCvv = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	session.SetForm(form)
	return nil
}

func printCart(session *storefront.Session) {
	cart := session.Cart()
	if len(cart.Items) == 0 {
		fmt.Println("cart is empty")
		return
	}
	for _, item := range cart.Items {
		fmt.Printf("%3d  %-24s $%.2f x %d = $%.2f\n",
			item.ProductID, item.Name, item.Price, item.Quantity, storefront.LineTotal(item))
	}
	summary := storefront.Summarize(cart)
	fmt.Printf("subtotal: $%.2f\n", summary.Subtotal)
	if summary.HasDiscount {
		fmt.Printf("discount (%s): -$%.2f\n", cart.DiscountCode, summary.Discount)
	}
	fmt.Printf("total: $%.2f\n", summary.Total)
}

func printForm(form checkout.Form) {
	fmt.Printf("name: %q email: %q address: %q city: %q zip: %q\n",
		form.Name, form.Email, form.Address, form.City, form.ZipCode)
	masked := form.CardNumber
	if len(masked) > 4 {
		masked = strings.Repeat("*", len(masked)-4) + masked[len(masked)-4:]
	}
	fmt.Printf("card: %q expiry: %q cvv set: %v\n", masked, form.CardExpiry, form.CardCvv != "")
}

func parseID(args []string) (int64, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("usage: %s <productId>", args[0])
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", args[1])
	}
	return id, nil
}

func parseIDAndQty(args []string) (int64, int, error) {
	id, err := parseID(args)
	if err != nil {
		return 0, 0, err
	}
	qty := 1
	if len(args) > 2 {
		qty, err = strconv.Atoi(args[2])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid quantity %q", args[2])
		}
	}
	return id, qty, nil
}
