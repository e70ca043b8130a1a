// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/mvsmart/storefront/internal/commerce"
	"github.com/mvsmart/storefront/internal/platform/constants"
)

// # Console Notifier

// consoleNotifier prints transient notifications inline, the shell's toast
// equivalent.
type consoleNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

func newConsoleNotifier(out io.Writer) *consoleNotifier {
	return &consoleNotifier{out: out}
}

func (n *consoleNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "  ✓ %s\n", message)
}

func (n *consoleNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "  ✗ %s\n", message)
}

// # Interactive Shell

// shell is the thin presentation layer over the state manager: it parses
// commands, calls manager operations, and renders the resulting snapshots.
// It holds no commerce state of its own.
type shell struct {
	manager  *commerce.Manager
	resolver commerce.PincodeResolver
	in       *bufio.Scanner
	out      io.Writer
}

func newShell(manager *commerce.Manager, resolver commerce.PincodeResolver, in io.Reader, out io.Writer) *shell {
	return &shell{
		manager:  manager,
		resolver: resolver,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// run processes commands until EOF, "quit", or context cancellation.
func (s *shell) run(ctx context.Context) {
	fmt.Fprintf(s.out, "%s — type 'help' for commands\n", constants.StoreDisplayName)

	for {
		fmt.Fprint(s.out, "mart> ")
		if !s.in.Scan() {
			return
		}
		if ctx.Err() != nil {
			return
		}

		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		command, args := fields[0], fields[1:]

		if command == "quit" || command == "exit" {
			return
		}
		s.dispatch(ctx, command, args)
	}
}

func (s *shell) dispatch(ctx context.Context, command string, args []string) {
	switch command {
	case "help":
		s.printHelp()
	case "products":
		s.showProducts(args)
	case "search":
		s.showSearch(args)
	case "product":
		s.showProduct(ctx, args)
	case "register":
		s.register(ctx, args)
	case "login":
		s.login(ctx, args)
	case "logout":
		s.manager.Logout()
	case "profile":
		s.showProfile()
	case "cart":
		s.showCart()
	case "add":
		s.addToCart(ctx, args)
	case "remove":
		s.removeFromCart(ctx, args)
	case "dec":
		s.decreaseQty(ctx, args)
	case "clear":
		_ = s.manager.ClearCart(ctx)
	case "address":
		s.address(ctx, args)
	case "buy":
		s.buyNow(ctx, args)
	case "checkout":
		s.checkout(ctx)
	default:
		fmt.Fprintf(s.out, "unknown command %q — type 'help'\n", command)
	}
}

func (s *shell) printHelp() {
	fmt.Fprint(s.out, `commands:
  products [page]            list the catalog
  search <term>              search product titles
  product <id>               show one product with related items
  register <email> <password> <name...>
  login <email> <password>
  logout
  profile                    show the signed-in profile
  cart                       show the cart with totals
  add <id> [qty]             add a product to the cart
  remove <id>                remove a cart line
  dec <id> [qty]             decrease a line's quantity
  clear                      empty the cart
  address [edit]             show or edit the shipping address
  buy <id>                   buy a single unit now
  checkout                   pay for the current cart
  quit
`)
}

// # Catalog Commands

func (s *shell) showProducts(args []string) {
	page := 1
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			page = n
		}
	}

	window, meta := commerce.Page(s.manager.Products(), page, constants.ProductsPerPage)
	for _, product := range window {
		fmt.Fprintf(s.out, "  %-24s %-28s ₹%.0f  [%s]\n", product.ID, product.Title, product.Price, product.Category)
	}
	fmt.Fprintf(s.out, "  page %d/%d (%d products)\n", meta.Page, meta.TotalPages, meta.Total)
}

func (s *shell) showSearch(args []string) {
	term := strings.Join(args, " ")
	results := s.manager.Search(term)
	if len(results) == 0 {
		fmt.Fprintln(s.out, "  no matches")
		return
	}

	window, _ := commerce.Page(results, 1, constants.SearchResultsPerPage)
	for _, product := range window {
		fmt.Fprintf(s.out, "  %-24s %-28s ₹%.0f\n", product.ID, product.Title, product.Price)
	}
}

func (s *shell) showProduct(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "usage: product <id>")
		return
	}

	product, err := s.manager.FetchProduct(ctx, args[0])
	if err != nil {
		return
	}

	fmt.Fprintf(s.out, "  %s\n  ₹%.0f  [%s]\n  %s\n", product.Title, product.Price, product.Category, product.Description)

	related := s.manager.Related(product.Category, product.ID)
	if len(related) > 0 {
		fmt.Fprintln(s.out, "  related:")
		for _, item := range related {
			fmt.Fprintf(s.out, "    %-24s %s\n", item.ID, item.Title)
		}
	}
}

// # Session Commands

func (s *shell) register(ctx context.Context, args []string) {
	if len(args) < 3 {
		fmt.Fprintln(s.out, "usage: register <email> <password> <name...>")
		return
	}
	name := strings.Join(args[2:], " ")
	_, _ = s.manager.Register(ctx, name, args[0], args[1])
}

func (s *shell) login(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "usage: login <email> <password>")
		return
	}
	_, _ = s.manager.Login(ctx, args[0], args[1])
}

func (s *shell) showProfile() {
	user := s.manager.User()
	if user == nil {
		fmt.Fprintln(s.out, "  not signed in")
		return
	}
	fmt.Fprintf(s.out, "  %s <%s>\n", user.Name, user.Email)
}

// # Cart Commands

func (s *shell) showCart() {
	cart := s.manager.Cart()
	if len(cart.Items) == 0 {
		fmt.Fprintln(s.out, "  cart is empty")
		return
	}

	for _, item := range cart.Items {
		fmt.Fprintf(s.out, "  %-24s %-28s ×%d  ₹%.0f\n", item.ProductID, item.Title, item.Qty, item.Price)
	}
	fmt.Fprintf(s.out, "  total: ₹%.0f (%d lines)\n", cart.TotalAmount(), cart.TotalItems())
}

// findProduct resolves a catalog entry from the cached snapshot so that
// add/buy commands can submit title and price with the line.
func (s *shell) findProduct(id string) *commerce.Product {
	for _, product := range s.manager.Products() {
		if product.ID == id {
			return &product
		}
	}
	fmt.Fprintf(s.out, "  unknown product %q\n", id)
	return nil
}

func (s *shell) addToCart(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "usage: add <id> [qty]")
		return
	}

	qty := 1
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
			qty = n
		}
	}

	product := s.findProduct(args[0])
	if product == nil {
		return
	}
	_ = s.manager.AddToCart(ctx, product.ID, product.Title, product.Price, qty, product.ImgSrc)
}

func (s *shell) removeFromCart(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "usage: remove <id>")
		return
	}
	_ = s.manager.RemoveFromCart(ctx, args[0])
}

func (s *shell) decreaseQty(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "usage: dec <id> [qty]")
		return
	}

	qty := 1
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
			qty = n
		}
	}
	_ = s.manager.DecreaseQty(ctx, args[0], qty)
}

func (s *shell) buyNow(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "usage: buy <id>")
		return
	}

	product := s.findProduct(args[0])
	if product == nil {
		return
	}
	if err := s.manager.BuyNow(ctx, *product); err != nil {
		return
	}

	// Buy-now goes straight to the address step.
	if s.manager.Address() == nil {
		s.editAddress(ctx)
	}
	s.checkout(ctx)
}

// # Address Commands

func (s *shell) address(ctx context.Context, args []string) {
	if len(args) > 0 && args[0] == "edit" {
		s.editAddress(ctx)
		return
	}

	if err := s.manager.FetchAddress(ctx); err != nil {
		return
	}

	address := s.manager.Address()
	if address == nil {
		fmt.Fprintln(s.out, "  no address saved — try 'address edit'")
		return
	}
	fmt.Fprintf(s.out, "  %s\n  %s\n  %s, %s %s\n  %s\n  ☎ %s\n",
		address.FullName, address.Address, address.City, address.State,
		address.Pincode, address.Country, address.PhoneNumber)
}

// prompt reads one line for a form field, keeping the current value when the
// shopper just presses enter.
func (s *shell) prompt(label, current string) string {
	if current != "" {
		fmt.Fprintf(s.out, "  %s [%s]: ", label, current)
	} else {
		fmt.Fprintf(s.out, "  %s: ", label)
	}
	if !s.in.Scan() {
		return current
	}
	value := strings.TrimSpace(s.in.Text())
	if value == "" {
		return current
	}
	return value
}

// editAddress walks the address form: pincode first so city, state, and
// country auto-fill before the remaining fields are prompted.
func (s *shell) editAddress(ctx context.Context) {
	form := commerce.NewAddressForm(s.manager.User())

	form.FullName = s.prompt("full name", form.FullName)
	form.Pincode = s.prompt("pincode", form.Pincode)

	form.ApplyPincodeLookup(ctx, s.resolver)
	if form.ErrorMessage != "" {
		fmt.Fprintf(s.out, "  ! %s\n", form.ErrorMessage)
	}

	form.Address = s.prompt("street address", form.Address)
	form.City = s.prompt("city", form.City)
	form.State = s.prompt("state", form.State)
	form.Country = s.prompt("country", form.Country)
	form.PhoneNumber = s.prompt("phone number", form.PhoneNumber)

	address, err := form.Validate()
	if err != nil {
		fmt.Fprintf(s.out, "  ! %s\n", form.ErrorMessage)
		return
	}

	_, _ = s.manager.AddAddress(ctx, address)
}

// # Checkout

func (s *shell) checkout(ctx context.Context) {
	order, err := s.manager.Checkout(ctx)
	if err != nil {
		return
	}
	fmt.Fprintf(s.out, "  order %s confirmed — ₹%.0f paid\n", order.OrderID, order.Amount)
}
