// Package conv narrows integers with bounds checks.
//
// Seed lanes and object sizes arrive as 64-bit values from callers and
// remote stores. Narrowing them silently would truncate a seed or a buffer
// size, so these helpers report overflow instead.
package conv
