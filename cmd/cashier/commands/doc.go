// Package commands defines the cashier CLI.
//
// Commands
//
//   - change         Compute the change for a price and an amount paid
//   - units          Break a raw amount of cents into bills and coins
//   - denominations  List the cash drawer, largest first
//
// Every command runs the calculator locally; nothing is stored.
package commands
