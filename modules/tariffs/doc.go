// Package tariffs contains the objects of the OCPI 2.2.1 Tariffs module.
//
// A Tariff is a list of TariffElements. Each element groups PriceComponents
// that apply under the same TariffRestrictions.
package tariffs
