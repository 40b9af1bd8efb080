// Package tick provides tick locators and tick label formatters for
// gonum.org/v1/plot axes.
//
// Tickers place tick marks and implement plot.Ticker; formatters turn a
// tick value into display text and implement [Formatter]. The two are
// composed with [Labeled], which relabels the major ticks of any ticker
// through a formatter, matching the host framework's axis contract where
// a single plot.Ticker supplies both positions and labels.
//
// Both tickers and formatters can be looked up by registered name with
// [NewTicker] and [NewFormatter]; unknown names error with the list of
// valid options.
package tick
