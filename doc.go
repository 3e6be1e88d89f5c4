// Package hillclimb finds shortest climbing routes across elevation maps.
//
// A map is a rectangle of letters 'a' (lowest) … 'z' (highest) with one start
// 'S' and one end 'E'. A step moves up, down, left or right and may descend any
// amount but climb at most one level.
//
// Everything is organized under these subpackages:
//
//	heightmap/     immutable Grid: parsing, marker normalization, sentinel border
//	climb/         single-source and multi-source shortest-path queries
//	config/        YAML settings for the driver and the HTTP service
//	server/        gin HTTP surface with an xxh3-keyed result cache
//	cmd/hillclimb/ command-line driver
//
// Quick ASCII example:
//
//	Sabqponm
//	abcryxxl
//	accszExk     S → E: 31 steps
//	acctuvwj     best 'a' → E: 29 steps
//	abdefghi
package hillclimb
