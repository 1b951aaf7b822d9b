package main

import (
	"dishrank-menu/services/menu"
	"dishrank-menu/services/trackLog"
	"dishrank-menu/utils"
	"fmt"
	"os"

	logLib "dishrank-menu/services/log"

	"github.com/sirupsen/logrus"
)

func main() {

	// 初始化 env
	var envService utils.EnvService
	envService.InitEnv()

	logService := logLib.LogService{Config: utils.EnvConfig.Log, Host: utils.EnvConfig.App.Name}
	trackLog.LogTrackInit(&logService)
	trackLog.Info("參數初始化成功...", false)

	logger := logService.LoggerInit("menu")
	defer func() {
		logger.WithFields(logrus.Fields{"task": "main", "name": utils.EnvConfig.App.Name}).Info("menu driver shutdown")
		if err := logService.Close(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}()

	menuService := menu.NewMenuService(logger)
	courses := menu.DemoMenu()

	// 名稱會被修剪並轉成字首大寫，驗證失敗時改成 Unknown Dish
	menuService.Rename(courses[1], "  garlic bread ")

	if err := menuService.Present(os.Stdout, courses...); err != nil {
		trackLog.Error(err.Error(), true)
		fmt.Fprintln(os.Stderr, err)
		_ = logService.Close()
		os.Exit(1)
	}
	trackLog.Info(fmt.Sprintf("displayed %d courses", len(courses)), true)
}
