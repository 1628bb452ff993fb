package logging

import (
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// LoggingWrapper adapts a command handler into a cli.ActionFunc. Each run gets
// its own LogData, also reachable through the command context.
func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(*cli.Context, *LogData) error,
) cli.ActionFunc {
	return func(c *cli.Context) error {
		log.Infof("Handler.%v.Start", loggingName)

		logData := NewLogData(log)
		c.Context = WithLogData(c.Context, logData)

		endTimer := logData.AddTiming("duration")
		err := handler(c, logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return err
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
		return nil
	}
}
