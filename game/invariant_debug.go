//go:build bombgrid_debug

package game

const debugInvariants = true
