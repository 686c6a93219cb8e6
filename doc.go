// Package simulador projects the value of USD-denominated investments held by
// a Brazilian resident, and the taxes owed on them in the United States and
// in Brazil under simplified rules.
//
// The core functionalities include:
//   - Parameter Set: a validated bundle of assumptions (horizon, initial and
//     monthly contributions, growth and yield rates, exchange rates).
//   - Rate Conversion: monthly rates derived from annual ones, compounding for
//     growth rates and proportional for coupon and dividend schedules.
//   - Simulation: three independent month-by-month models (a dividend-paying
//     ETF, a coupon bond with reinvestment and an accumulating mutual fund)
//     sampled once a year.
//   - Aggregation: final gross and net values in USD and BRL, and the year by
//     year evolution of each vehicle.
//
// The engine is pure: it performs no I/O and the same parameters always yield
// the same projection. Views over a projection live in the renderer package,
// and this package serves as the foundation for the `sce` command-line tool
// and its embedded web page.
package simulador
