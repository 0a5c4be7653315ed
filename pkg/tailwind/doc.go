// Package tailwind resolves conflicting Tailwind CSS utility classes.
//
// Merger wraps github.com/Oudwins/tailwind-merge-go and memoizes results in an
// LRU cache, so a class list that is rendered on every page is only resolved once:
//
//	m := tailwind.NewMerger()
//	m.Merge("px-2 py-1 bg-red", "p-3 bg-[#B91C1C]") // "p-3 bg-[#B91C1C]"
//
// Project specific class groups and validators are read from YAML or JSON
// files (see Config):
//
//	m := tailwind.NewMerger(tailwind.WithConfigFiles("tailwind-merge.yaml"))
//	if err := m.Load(); err != nil {
//		return err
//	}
//
// Watcher observes configuration files with fsnotify. On change the Merger
// reloads its configuration and drops memoized results:
//
//	w := tailwind.NewWatcher(m, []string{"tailwind-merge.yaml", "assets/css"}, tailwind.WithLogger(log))
//	if err := w.Start(ctx); err != nil {
//		return err
//	}
//	defer w.Stop()
package tailwind
