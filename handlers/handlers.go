package handlers

import (
	"github.com/rallyhq/matchpoint/handlers/base"
	"github.com/rallyhq/matchpoint/handlers/tournament"
)

var CommandHandlers = []base.Command{
	&PingHandler{},
	&AdminHandler{},
	&tournament.CreateHandler{Base: base.GetBaseAdmin()},
	&tournament.WinnerHandler{Base: base.GetBaseAdmin()},
	&tournament.AdvanceHandler{Base: base.GetBaseAdmin()},
	&tournament.ScheduleHandler{},
	&tournament.ReportHandler{},
	&tournament.ResetHandler{Base: base.GetBaseAdmin()},
}
