package tag_gateway

import "rss-reader/port/tag_port"

var _ tag_port.TagRepositoryPort = (*TagGateway)(nil)
