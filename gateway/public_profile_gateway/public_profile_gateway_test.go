package public_profile_gateway

import "rss-reader/port/public_profile_port"

var _ public_profile_port.PublicProfilePort = (*PublicProfileGateway)(nil)
