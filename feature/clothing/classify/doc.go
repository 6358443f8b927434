// Package classify assigns a Tier to every catalog item.
//
// The rules form one ordered table evaluated by a single dispatcher:
//
//  1. premium club set      -> club
//  2. sellable set          -> sellable
//  3. collectible furniline -> collectible
//  4. rare classname prefix -> rare
//  5. limited prefix        -> limited
//  6. otherwise             -> normal
//
// Feed flags come first. The furnidata naming conventions behind rules 3 to 5 vary
// between hotels and are configurable through Options.
package classify
