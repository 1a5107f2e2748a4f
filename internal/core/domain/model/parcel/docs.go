// Package parcel contains the Parcel aggregate root and its supporting
// value objects: the lifecycle Status state machine, TimelineEntry history
// events, and the Party and CourierRef references.
//
// The aggregate enforces the delivery lifecycle: parcels start pending,
// move forward through picked_up and in_transit to delivered, and may be
// cancelled from any non-terminal status. Every status change appends
// exactly one timeline entry, and the timeline's last entry always matches
// the current status.
package parcel
