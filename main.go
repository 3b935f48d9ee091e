package main

import (
	"flag"
	"log"

	"github.com/gonewx/targets/pkg/app"
	"github.com/gonewx/targets/pkg/config"
	"github.com/gonewx/targets/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "外部调参文件路径（默认使用内置 data/targets.yaml）")
	audioDir := flag.String("audio-dir", "", "音效文件目录（<id>.wav/.ogg/.mp3），缺少的音效使用合成音")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		AudioDir:   *audioDir,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetTPS(gameApp.GameConfig().TicksPerSecond)
	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Targets")

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
