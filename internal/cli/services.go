package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gateway-delegation/lookup-services/internal/lookup"
	"github.com/gateway-delegation/lookup-services/internal/orders"
	"github.com/gateway-delegation/lookup-services/internal/pricing"
)

// serviceLoaders builds each service from its catalog. An empty path loads the built-in catalog.
var serviceLoaders = map[string]func(catalogPath string) (lookup.Endpoint, error){
	"orders": func(catalogPath string) (lookup.Endpoint, error) {
		cat, err := orders.LoadCatalog(catalogPath)
		if err != nil {
			return nil, err
		}
		return orders.NewService(cat), nil
	},
	"pricing": func(catalogPath string) (lookup.Endpoint, error) {
		cat, err := pricing.LoadCatalog(catalogPath)
		if err != nil {
			return nil, err
		}
		return pricing.NewService(cat), nil
	},
}

func serviceNames() []string {
	names := make([]string, 0, len(serviceLoaders))
	for name := range serviceLoaders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// loadService loads the catalog and returns the named service.
func loadService(name, catalogPath string) (lookup.Endpoint, error) {
	loader, ok := serviceLoaders[name]
	if !ok {
		return nil, fmt.Errorf("unknown service %q (expected one of: %s)", name, strings.Join(serviceNames(), ", "))
	}

	svc, err := loader(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s catalog: %w", name, err)
	}
	return svc, nil
}
