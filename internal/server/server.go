package server

import "numroute/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Данный сервер просто объединяет специфичные HTTP сервера, отвечающие за обработку конкретных сущностей
type Server struct {
	PhoneServer
	RoutingServer
}

func NewServer(
	phoneServer PhoneServer,
	routingServer RoutingServer,
) Server {
	return Server{
		PhoneServer:   phoneServer,
		RoutingServer: routingServer,
	}
}
