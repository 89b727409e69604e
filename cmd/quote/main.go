package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"vendor-booking-portal/internal/config"
	"vendor-booking-portal/internal/services"
	"vendor-booking-portal/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	price := flag.Float64("price", 0, "price per session")
	discount := flag.Float64("discount", 0, "bulk discount")
	currency := flag.String("currency", cfg.Pricing.DefaultCurrency, "ISO 4217 currency code")
	flag.Parse()

	if !finite(*price) || *price <= 0 {
		fmt.Fprintln(os.Stderr, "price must be a number greater than 0")
		flag.Usage()
		os.Exit(2)
	}
	if !finite(*discount) || *discount < 0 {
		fmt.Fprintln(os.Stderr, "discount must be a number of 0 or more")
		flag.Usage()
		os.Exit(2)
	}
	if !utils.ValidCurrencyCode(*currency) {
		log.Fatalf("Unknown currency code %q", *currency)
	}

	calculator := services.NewPricingCalculator(*currency)
	breakdown := calculator.Compute(services.PricingInput{
		PricePerSession: *price,
		BulkDiscount:    *discount,
	})
	display := calculator.Display(breakdown, *currency)

	fmt.Printf("Price:       %s\n", display.BaseText)
	fmt.Printf("Discount:    %s\n", display.DiscountText)
	fmt.Printf("Service fee: %s\n", display.ServiceFeeText)
	fmt.Printf("Total:       %s\n", display.TotalText)
	fmt.Printf("Stored cost: %.4f\n", breakdown.Total)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
