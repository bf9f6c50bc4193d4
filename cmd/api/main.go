package main

import (
	"flag"
	"log"

	"folio/api"
	"folio/internal/cache"
	"folio/internal/prices"
	"folio/internal/resolver"
)

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	flag.Parse()

	provider := cache.NewProvider(prices.NewYahooClient(), cache.NewMemory())
	r := resolver.NewResolver(provider)

	log.Fatal(api.StartApi(*port, r))
}
