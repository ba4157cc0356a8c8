package ctdf

// TransferPlan describes a single change of route at an intermediate stop.
// It is the first valid transfer discovered, not necessarily the best one.
type TransferPlan struct {
	OriginRoute      RouteReference `json:"origin_route" groups:"basic"`
	TransferStop     StopReference  `json:"transfer_stop" groups:"basic"`
	DestinationRoute RouteReference `json:"destination_route" groups:"basic"`
}
