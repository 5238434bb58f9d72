package main

import (
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"

	"fitsync-notify/internal/ioc"
)

func main() {
	egoApp := ego.New()
	app := ioc.InitApp()
	if err := egoApp.Serve(app.WebServer).Run(); err != nil {
		elog.Panic("启动失败", elog.FieldErr(err))
	}
}
