// Package mscplan ties the planning components together behind a single
// call: resolve the dose target, search the expansion plan, account the
// resources, and sample the growth trajectory.
//
//	res, err := mscplan.Run(mscplan.Request{
//		WeightKg:    70,
//		DosePerKg:   1.0,
//		VesselID:    "standard-medium",
//		SeparatorID: "apheresis-standard",
//	})
//
// Every run is an independent pure computation over an immutable catalog and
// protocol, so concurrent runs need no coordination.
package mscplan
