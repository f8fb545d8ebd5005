// Package factory provides the generic registry behind config-selected
// modules. An implementation registers a Builder under a type name, usually
// from its package init; configuration then names the type and supplies raw
// settings, which the builder decodes with Decode.
//
// The metrics sinks are the registry's one consumer today: "prometheus",
// "influx" and "nop" register themselves and the config picks any
// combination of them.
package factory
