// Package vehicle builds matching vehicles and engines from one family factory,
// so an electric car never ends up with a combustion engine.
package vehicle

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Family names a vehicle family.
type Family = string

// Supported families.
const (
	Electric Family = "electric"
	Gas      Family = "gas"
)

// ErrUnknownFamily is returned by Lookup for an unsupported family.
var ErrUnknownFamily = errors.New("unknown vehicle family")

// Vehicle is a product that can be assembled.
type Vehicle interface {
	Assemble(w io.Writer) error
}

// Engine is a product that can be started.
type Engine interface {
	Start(w io.Writer) error
}

// Factory creates a vehicle and an engine of the same family.
type Factory interface {
	CreateVehicle() Vehicle
	CreateEngine() Engine
}

// ElectricCar is the electric family vehicle.
type ElectricCar struct{}

// Assemble implements Vehicle
func (ElectricCar) Assemble(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Assembling an electric car")
	return err
}

// GasCar is the combustion family vehicle.
type GasCar struct{}

// Assemble implements Vehicle
func (GasCar) Assemble(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Assembling a combustion car")
	return err
}

// ElectricEngine is the electric family engine.
type ElectricEngine struct{}

// Start implements Engine
func (ElectricEngine) Start(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Starting electric engine")
	return err
}

// GasEngine is the combustion family engine.
type GasEngine struct{}

// Start implements Engine
func (GasEngine) Start(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Starting combustion engine")
	return err
}

// ElectricFactory creates electric cars and engines.
type ElectricFactory struct{}

// CreateVehicle implements Factory
func (ElectricFactory) CreateVehicle() Vehicle { return ElectricCar{} }

// CreateEngine implements Factory
func (ElectricFactory) CreateEngine() Engine { return ElectricEngine{} }

// GasFactory creates combustion cars and engines.
type GasFactory struct{}

// CreateVehicle implements Factory
func (GasFactory) CreateVehicle() Vehicle { return GasCar{} }

// CreateEngine implements Factory
func (GasFactory) CreateEngine() Engine { return GasEngine{} }

var factories = map[Family]Factory{
	Electric: ElectricFactory{},
	Gas:      GasFactory{},
}

// Lookup returns the factory for family. Matching ignores case and surrounding
// whitespace, and "combustion" is accepted for the gas family.
func Lookup(family Family) (Factory, error) {
	family = strings.ToLower(strings.TrimSpace(family))
	if family == "combustion" {
		family = Gas
	}

	f, ok := factories[family]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFamily, family, strings.Join(Families(), ", "))
	}
	return f, nil
}

// Families lists the supported families in sorted order.
func Families() []Family {
	families := make([]Family, 0, len(factories))
	for family := range factories {
		families = append(families, family)
	}
	slices.Sort(families)
	return families
}

// Build assembles a vehicle and starts its engine, both created by f.
func Build(f Factory, w io.Writer) error {
	if err := f.CreateVehicle().Assemble(w); err != nil {
		return fmt.Errorf("assemble vehicle: %w", err)
	}
	if err := f.CreateEngine().Start(w); err != nil {
		return fmt.Errorf("start engine: %w", err)
	}
	return nil
}
