// Package calculators provides concrete Calculator implementations for the estimation engine.
//
// Each calculator projects one scenario of the epidemic (best case, severe case) over the
// normalized time window: infections, severe cases, ICU and ventilator demand, hospital bed
// availability and the economic impact. Calculators are composed via the estimation.Engine.
package calculators
