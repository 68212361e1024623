package footprint

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"maps"
	"sync"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/iwvelando/carbon-footprint/pkg/mathutil"
)

// DefaultTableFile is the embedded factor table used when no override is configured.
const DefaultTableFile = "tables/hk-sme-2024.yaml"

//go:embed tables/*.yaml
var tableFiles embed.FS

// Factors is the lookup capability the calculator needs from a factor table.
// Lookups for selector-keyed categories fail with ErrUnknownCategoryKey when
// the key has no entry.
type Factors interface {
	Food(food FoodType) (float64, error)
	Transport(mode TransportMode) (float64, error)
	Flight(band FlightBand, class CabinClass) (float64, error)
	FlightDistance(band FlightBand) (float64, error)
	Clothing() ClothingFactors
	Household() HouseholdFactors
	WaterPerLiter() float64
	Electricity(supplier Supplier) (float64, error)
	TreeAbsorptionGrams() float64
	Info() TableInfo
}

// ClothingFactors holds g CO2e per gram of clothing material.
type ClothingFactors struct {
	Cotton    float64 `yaml:"cotton" json:"cotton"`
	Synthetic float64 `yaml:"synthetic" json:"synthetic"`
}

// HouseholdFactors holds g CO2e per gram of household goods.
type HouseholdFactors struct {
	Paper   float64 `yaml:"paper" json:"paper"`
	Plastic float64 `yaml:"plastic" json:"plastic"`
}

// WaterFactors holds g CO2e per litre of water used.
type WaterFactors struct {
	PerLiter float64 `yaml:"perLiter" json:"perLiter"`
}

// OffsetFactors holds the grams of CO2 one tree absorbs per year.
type OffsetFactors struct {
	TreePerYear float64 `yaml:"treePerYear" json:"treePerYear"`
}

// FactorSpec is the serialisable form of a factor table. It is the YAML
// document layout and the argument to NewEmissionFactors.
type FactorSpec struct {
	Name           string                                `yaml:"name" json:"name"`
	Version        string                                `yaml:"version" json:"version"`
	Source         string                                `yaml:"source,omitempty" json:"source,omitempty"`
	Food           map[FoodType]float64                  `yaml:"food" json:"food"`
	Transport      map[TransportMode]float64             `yaml:"transport" json:"transport"`
	Flight         map[FlightBand]map[CabinClass]float64 `yaml:"flight" json:"flight"`
	FlightDistance map[FlightBand]float64                `yaml:"flightDistance" json:"flightDistance"`
	Clothing       ClothingFactors                       `yaml:"clothing" json:"clothing"`
	Household      HouseholdFactors                      `yaml:"household" json:"household"`
	Water          WaterFactors                          `yaml:"water" json:"water"`
	Electricity    map[Supplier]float64                  `yaml:"electricity" json:"electricity"`
	CarbonOffset   OffsetFactors                         `yaml:"carbonOffset" json:"carbonOffset"`
}

// TableInfo identifies a factor table in reports.
type TableInfo struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
	Source  string `json:"source,omitempty" yaml:"source,omitempty"`
}

// EmissionFactors is an immutable, validated factor table. It is safe for
// concurrent use.
type EmissionFactors struct {
	spec    FactorSpec
	version *semver.Version
}

var defaultFactors = sync.OnceValues(func() (*EmissionFactors, error) {
	data, err := tableFiles.ReadFile(DefaultTableFile)
	if err != nil {
		return nil, err
	}
	return LoadFactors(bytes.NewReader(data))
})

// DefaultFactors returns the embedded factor table. It panics if the embedded
// document is invalid, which the package tests rule out.
func DefaultFactors() *EmissionFactors {
	f, err := defaultFactors()
	if err != nil {
		panic(fmt.Sprintf("embedded factor table %s is invalid: %v", DefaultTableFile, err))
	}
	return f
}

// LoadFactors decodes and validates a YAML factor table.
func LoadFactors(r io.Reader) (*EmissionFactors, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var spec FactorSpec
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("failed to decode factor table: %w", err)
	}
	return NewEmissionFactors(spec)
}

// LoadFactorsWithConstraint loads a table and requires its version to satisfy
// constraint, e.g. ">= 2024.1.0, < 2025". An empty constraint accepts any version.
func LoadFactorsWithConstraint(r io.Reader, constraint string) (*EmissionFactors, error) {
	f, err := LoadFactors(r)
	if err != nil {
		return nil, err
	}
	if err := f.Satisfies(constraint); err != nil {
		return nil, err
	}
	return f, nil
}

// NewEmissionFactors validates spec and returns a table holding its own copy.
func NewEmissionFactors(spec FactorSpec) (*EmissionFactors, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("%w: table name is required", ErrInvalidFactor)
	}
	version, err := semver.NewVersion(spec.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidFactorVersion, spec.Version, err)
	}

	// Keys are re-keyed to their canonical spelling so lookups are exact.
	canon := spec
	canon.Food = make(map[FoodType]float64, len(spec.Food))
	for food, v := range spec.Food {
		key, err := ParseFoodType(string(food))
		if err != nil {
			return nil, err
		}
		if err := checkCoefficient("food."+string(food), v); err != nil {
			return nil, err
		}
		canon.Food[key] = v
	}
	canon.Transport = make(map[TransportMode]float64, len(spec.Transport))
	for mode, v := range spec.Transport {
		key, err := ParseTransportMode(string(mode))
		if err != nil {
			return nil, err
		}
		if err := checkCoefficient("transport."+string(mode), v); err != nil {
			return nil, err
		}
		canon.Transport[key] = v
	}
	canon.Flight = make(map[FlightBand]map[CabinClass]float64, len(spec.Flight))
	for band, classes := range spec.Flight {
		bandKey, err := ParseFlightBand(string(band))
		if err != nil {
			return nil, err
		}
		canon.Flight[bandKey] = make(map[CabinClass]float64, len(classes))
		for class, v := range classes {
			classKey, err := ParseCabinClass(string(class))
			if err != nil {
				return nil, err
			}
			if err := checkCoefficient("flight."+string(band)+"."+string(class), v); err != nil {
				return nil, err
			}
			canon.Flight[bandKey][classKey] = v
		}
	}
	canon.FlightDistance = make(map[FlightBand]float64, len(spec.FlightDistance))
	for band, v := range spec.FlightDistance {
		key, err := ParseFlightBand(string(band))
		if err != nil {
			return nil, err
		}
		if err := checkCoefficient("flightDistance."+string(band), v); err != nil {
			return nil, err
		}
		canon.FlightDistance[key] = v
	}
	for _, band := range FlightBands() {
		if _, ok := canon.FlightDistance[band]; !ok {
			return nil, fmt.Errorf("%w: flightDistance.%s is required", ErrInvalidFactor, band)
		}
	}
	canon.Electricity = make(map[Supplier]float64, len(spec.Electricity))
	for supplier, v := range spec.Electricity {
		key, err := ParseSupplier(string(supplier))
		if err != nil {
			return nil, err
		}
		if err := checkCoefficient("electricity."+string(supplier), v); err != nil {
			return nil, err
		}
		canon.Electricity[key] = v
	}

	scalars := map[string]float64{
		"clothing.cotton":    spec.Clothing.Cotton,
		"clothing.synthetic": spec.Clothing.Synthetic,
		"household.paper":    spec.Household.Paper,
		"household.plastic":  spec.Household.Plastic,
		"water.perLiter":     spec.Water.PerLiter,
	}
	for name, v := range scalars {
		if err := checkCoefficient(name, v); err != nil {
			return nil, err
		}
	}
	if !(spec.CarbonOffset.TreePerYear > 0) || !mathutil.IsFinite(spec.CarbonOffset.TreePerYear) {
		return nil, fmt.Errorf("%w: carbonOffset.treePerYear must be positive", ErrInvalidFactor)
	}

	return &EmissionFactors{spec: canon, version: version}, nil
}

func checkCoefficient(name string, v float64) error {
	if !mathutil.IsFinite(v) || v < 0 {
		return fmt.Errorf("%w: %s = %v", ErrInvalidFactor, name, v)
	}
	return nil
}

func cloneSpec(spec FactorSpec) FactorSpec {
	out := spec
	out.Food = maps.Clone(spec.Food)
	out.Transport = maps.Clone(spec.Transport)
	out.FlightDistance = maps.Clone(spec.FlightDistance)
	out.Electricity = maps.Clone(spec.Electricity)
	if spec.Flight != nil {
		out.Flight = make(map[FlightBand]map[CabinClass]float64, len(spec.Flight))
		for band, classes := range spec.Flight {
			out.Flight[band] = maps.Clone(classes)
		}
	}
	return out
}

// Satisfies checks the table version against a semver constraint.
func (f *EmissionFactors) Satisfies(constraint string) error {
	if constraint == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("%w: constraint %q: %v", ErrInvalidFactorVersion, constraint, err)
	}
	if !c.Check(f.version) {
		return fmt.Errorf("%w: %s %s does not satisfy %q", ErrInvalidFactorVersion, f.spec.Name, f.version, constraint)
	}
	return nil
}

// Info returns the table name, version and source.
func (f *EmissionFactors) Info() TableInfo {
	return TableInfo{Name: f.spec.Name, Version: f.version.String(), Source: f.spec.Source}
}

// Spec returns a copy of the table contents.
func (f *EmissionFactors) Spec() FactorSpec {
	return cloneSpec(f.spec)
}

// Food returns g CO2e per gram of the given food.
func (f *EmissionFactors) Food(food FoodType) (float64, error) {
	v, ok := f.spec.Food[food]
	if !ok {
		return 0, unknownKey("food type", string(food))
	}
	return v, nil
}

// Transport returns g CO2e per passenger km for the mode. Mode strings are
// matched case-insensitively.
func (f *EmissionFactors) Transport(mode TransportMode) (float64, error) {
	parsed, err := ParseTransportMode(string(mode))
	if err != nil {
		return 0, err
	}
	v, ok := f.spec.Transport[parsed]
	if !ok {
		return 0, unknownKey("transport mode", string(mode))
	}
	return v, nil
}

// Flight returns g CO2e per passenger km for the band and cabin class.
func (f *EmissionFactors) Flight(band FlightBand, class CabinClass) (float64, error) {
	parsedClass, err := ParseCabinClass(string(class))
	if err != nil {
		return 0, err
	}
	classes, ok := f.spec.Flight[band]
	if !ok {
		return 0, unknownKey("flight band", string(band))
	}
	v, ok := classes[parsedClass]
	if !ok {
		return 0, unknownKey("cabin class", string(class))
	}
	return v, nil
}

// FlightDistance returns the assumed one-way distance in km for a band.
func (f *EmissionFactors) FlightDistance(band FlightBand) (float64, error) {
	v, ok := f.spec.FlightDistance[band]
	if !ok {
		return 0, unknownKey("flight band", string(band))
	}
	return v, nil
}

// Clothing returns the clothing material coefficients.
func (f *EmissionFactors) Clothing() ClothingFactors {
	return f.spec.Clothing
}

// Household returns the household goods coefficients.
func (f *EmissionFactors) Household() HouseholdFactors {
	return f.spec.Household
}

// WaterPerLiter returns g CO2e per litre of water.
func (f *EmissionFactors) WaterPerLiter() float64 {
	return f.spec.Water.PerLiter
}

// Electricity returns g CO2e per kWh for the supplier. Supplier strings are
// matched case-insensitively.
func (f *EmissionFactors) Electricity(supplier Supplier) (float64, error) {
	parsed, err := ParseSupplier(string(supplier))
	if err != nil {
		return 0, err
	}
	v, ok := f.spec.Electricity[parsed]
	if !ok {
		return 0, unknownKey("electricity supplier", string(supplier))
	}
	return v, nil
}

// TreeAbsorptionGrams returns the grams of CO2 one tree absorbs per year.
func (f *EmissionFactors) TreeAbsorptionGrams() float64 {
	return f.spec.CarbonOffset.TreePerYear
}

// MarshalYAML renders the table in its document layout.
func (f *EmissionFactors) MarshalYAML() (interface{}, error) {
	spec := f.Spec()
	spec.Version = f.version.String()
	return spec, nil
}
