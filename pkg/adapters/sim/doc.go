// Package sim provides an in-process maze and a Platform that drives a simulated
// mouse through it. It is used by the sim command and by tests that need a real
// maze without the mms simulator.
package sim
