package notify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/h13-0/AppLauncher/internal/domain"
)

// Title is the caption of every error dialog.
const Title = "App Launcher"

const exitNotice = "The launcher will now exit. / 程序将立即退出"

// UserMessage turns err into the bilingual text shown to the user, ending with the exit notice.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return describe(err) + "\n" + exitNotice
}

func describe(err error) string {
	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return unexpected(err)
	}

	switch oe.Kind {
	case domain.KindConfigNotFound:
		return withPath("Configuration file not found / 找不到配置文件", oe.Path)

	case domain.KindConfigUnreadable:
		return withPath("Cannot read the configuration file, or it is empty / 无法读取配置文件或文件为空", oe.Path)

	case domain.KindMissingField:
		return "The configuration is missing the 'executable' field / 配置文件缺少 'executable' 字段。"

	case domain.KindTargetNotFound:
		return withPath("Target program does not exist / 目标程序不存在", oe.Path)

	case domain.KindSpawnFailed:
		var se *domain.SpawnError
		if !errors.As(err, &se) {
			return unexpected(err)
		}
		msg := fmt.Sprintf("Failed to start the process. Error code: %d / 启动进程失败。错误代码：%d", se.Code, se.Code)
		if d := strings.TrimSpace(se.Description); d != "" {
			msg += "\n" + d
		}
		return msg

	case domain.KindExecution:
		if strings.HasPrefix(oe.Op, "configfinder.owndir") {
			return "Cannot determine the launcher's own path / 无法获取当前程序路径。"
		}
		return unexpected(err)

	default:
		return unexpected(err)
	}
}

func unexpected(err error) string {
	msg := "Unexpected error. / 意外错误。"
	if d := strings.TrimSpace(err.Error()); d != "" {
		msg += "\n" + d
	}
	return msg
}

func withPath(text, path string) string {
	if strings.TrimSpace(path) == "" {
		return text
	}
	return text + "\n" + path
}
