// Package formatters provides the record transformations that run between a
// logger and its sinks.
//
// Each formatter implements core.Formatter and never mutates the event it is
// given: it either returns that event unchanged or a new one. The default
// chain, built by Default, runs in a fixed order:
//
//  1. ErrorStackFormatter flattens the error slot into stack strings.
//  2. BigNumberFormatter replaces big-number-like values with their string form.
//  3. IdentityFormatter tags the event with the bot and run identifiers.
//
// LinkAnchorFormatter is not part of the default chain; add it for outputs
// that cannot render <url|label> style links.
package formatters
